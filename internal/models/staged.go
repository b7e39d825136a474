package models

type Attachment struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	Data         string `json:"data"`
	Checksum     string `json:"checksum,omitempty"`
	ContainerRef string `json:"container_ref,omitempty"`
}

type StagedSummary struct {
	ContainerNo string  `json:"container_no"`
	Type        string  `json:"type"`
	Weight      float64 `json:"weight"`
	Volume      float64 `json:"volume"`
	LinesCount  int     `json:"lines_count"`
	FilesCount  int     `json:"files_count"`
}

type StagedContainer struct {
	ID      string        `json:"id"`
	Header  Header        `json:"header"`
	Rows    []Row         `json:"rows"`
	Files   []Attachment  `json:"files"`
	Summary StagedSummary `json:"summary"`
}
