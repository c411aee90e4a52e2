package model

// PointerRequest represents request for POST /sessions/{id}/pointer
type PointerRequest struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// KeyRequest represents request for POST /sessions/{id}/key
type KeyRequest struct {
	Code int `json:"code"`
}

// ProgressResponse represents entropy collection state of a session
type ProgressResponse struct {
	Progress         float64 `json:"progress"`
	Length           int     `json:"length"`
	State            string  `json:"state"`        // "collecting" or "ready"
	TriggerStyle     string  `json:"triggerStyle"` // "warning" or "success"
	IndicatorSuccess bool    `json:"indicatorSuccess"`
	DialogVisible    bool    `json:"dialogVisible"`
}

// SessionResponse represents response for POST /sessions
type SessionResponse struct {
	ID       string           `json:"id"`
	Progress ProgressResponse `json:"progress"`
}

// SectionResponse represents one rendered wallet section
type SectionResponse struct {
	Kind       string `json:"kind"` // "address" or "private_key"
	ID         int    `json:"id"`
	Label      string `json:"label"`
	Target     string `json:"target"`
	Address    string `json:"address"`
	PrivateKey string `json:"privateKey,omitempty"`
	HDSeed     string `json:"hdSeed,omitempty"`
	Path       string `json:"path,omitempty"`
	QR         string `json:"QR,omitempty"` // base64 PNG
}

// ConfirmResponse represents response for POST /sessions/{id}/confirm
type ConfirmResponse struct {
	Rendered int               `json:"rendered"`
	Sections []SectionResponse `json:"sections"`
}
