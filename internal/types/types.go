package types

// Transcript is the normalized output of a transcription service: utterances
// attributed to speakers, with per-word timings in milliseconds.
type Transcript struct {
	Utterances []Utterance `json:"utterances"`
}

type Utterance struct {
	Speaker string `json:"speaker"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Words   []Word `json:"words"`
}

type Word struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}
