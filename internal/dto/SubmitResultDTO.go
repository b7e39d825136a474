package dto

type SubmitResultDTO struct {
	Success    bool   `json:"success"`
	Rows       int    `json:"rows"`
	Files      int    `json:"files"`
	Containers string `json:"containers"`
}
