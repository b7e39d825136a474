package models

type Totals struct {
	Items     int     `json:"items"`
	Area      float64 `json:"area"`
	Pieces    float64 `json:"pieces"`
	CanSubmit bool    `json:"can_submit"`
}
