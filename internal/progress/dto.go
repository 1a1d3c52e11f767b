package progress

// LevelCompletion summarizes how far a user is through the lessons of one
// course level. Completed is the evaluation gate: it requires at least one
// lesson to exist and all of them to be done.
type LevelCompletion struct {
	Total     int  `json:"total"`
	Done      int  `json:"done"`
	Percent   int  `json:"percent"`
	Completed bool `json:"completed"`
}
