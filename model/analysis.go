package model

type ChordAnalysis struct {
	Index        int         `json:"index"`
	Key          int         `json:"key"`
	KeyName      string      `json:"key_name"`
	Bass         int         `json:"bass"`
	Shape        Shape       `json:"shape"`
	Accd         Accidentals `json:"accd,omitempty"`
	Degrees      string      `json:"degrees"`
	MainFunction string      `json:"main_function"`
	ScaleLevel   string      `json:"scale_level"`
	RealName     string      `json:"real_name"`
	Tension      string      `json:"tension"`
	TensionValue float64     `json:"tension_value"`
	Strength     string      `json:"strength"`
	Pitches      []string    `json:"pitches"`
	Beats        float64     `json:"beats"`
	Bpm          float64     `json:"bpm"`
	Memo         string      `json:"memo,omitempty"`
}

type CatalogEntry struct {
	Group        string `json:"group"`
	Basic        Shape  `json:"basic"`
	Bass         int    `json:"bass"`
	Shape        Shape  `json:"shape"`
	MainFunction string `json:"main_function"`
	Common       bool   `json:"common"`
}
