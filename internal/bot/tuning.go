package bot

// Tuning weighs the features GreedyBot scores a placement on.
type Tuning struct {
	WinBonus        float64 // placement completes a winning line
	RunWeight       float64 // per card in the longest own line through the cell
	BlockWeight     float64 // per opponent card in the line broken by an overwrite
	ThreatBonus     float64 // cell would have completed an opponent's winning line
	HighCardPenalty float64 // per card value spent on an empty cell
}

// DefaultTuning prefers winning, then blocking an imminent loss, then building lines.
var DefaultTuning = Tuning{
	WinBonus:        1000.0,
	RunWeight:       4.0,
	BlockWeight:     3.0,
	ThreatBonus:     200.0,
	HighCardPenalty: 0.5,
}
