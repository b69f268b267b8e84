package domain

// Target addresses one employer board on one platform. Platform is a
// lowercase registry tag ("lever", "greenhouse"); Company is the
// platform-specific slug, treated as an opaque key.
type Target struct {
	Platform string `json:"platform"`
	Company  string `json:"company"`
}
