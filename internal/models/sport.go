package models

// Sport category codes.
const (
	SportBallSports  = "ball_sports"
	SportFitness     = "fitness"
	SportSwimming    = "swimming"
	SportPilatesYoga = "pilates_yoga"
)

// SportCategory is one of the fixed coarse activity groupings used for supply/demand comparison.
type SportCategory struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// SportCatalogue returns the fixed, ordered list of sport categories.
func SportCatalogue() []SportCategory {
	return []SportCategory{
		{Code: SportBallSports, Label: "구기/필드종목"},
		{Code: SportFitness, Label: "헬스/체력단련"},
		{Code: SportSwimming, Label: "수영"},
		{Code: SportPilatesYoga, Label: "필라테스/요가"},
	}
}
