package pons

// Response holds one language block of the dictionary API response
type Response struct {
	Lang string `json:"lang"`
	Hits []Hit  `json:"hits"`
}

// Hit holds a single dictionary hit
type Hit struct {
	Type     string `json:"type"`
	OpenDict bool   `json:"opendict"`
	Roms     []Rom  `json:"roms"`
}

// Rom is a headword block of a hit
type Rom struct {
	Headword     string `json:"headword"`
	HeadwordFull string `json:"headword_full"`
	Wordclass    string `json:"wordclass"`
	Arabs        []Arab `json:"arabs"`
}

// Arab groups translations of a single sense
type Arab struct {
	Header       string        `json:"header"`
	Translations []Translation `json:"translations"`
}

// Translation is a source/target pair
type Translation struct {
	Source string `json:"source"`
	Target string `json:"target"`
}
