package content

// TeamMember is one trainer profile from the team resource.
type TeamMember struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Role        string            `json:"role"`
	Bio         string            `json:"bio"`
	Photo       string            `json:"photo"`
	Specialties []string          `json:"specialties"`
	Experience  string            `json:"experience"`
	Socials     map[string]string `json:"socials"`
}

// ServiceCategory groups bookable services under one tab.
type ServiceCategory struct {
	ID          string        `json:"id"`
	Category    string        `json:"category"`
	Description string        `json:"description"`
	Items       []ServiceItem `json:"items"`
}

// ServiceItem is a single bookable service. Price is in minor currency units.
type ServiceItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Price       int64  `json:"price"`
	Currency    string `json:"currency"`
	Popular     bool   `json:"popular"`
}

// TrainingProgram is one scheduled course. NextDate is an ISO date and may be
// empty when no session is scheduled yet; SpotsAvailable is nil when the
// resource does not publish capacity.
type TrainingProgram struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Duration       string   `json:"duration"`
	Level          string   `json:"level"`
	Price          int64    `json:"price"`
	Currency       string   `json:"currency"`
	Includes       []string `json:"includes"`
	NextDate       string   `json:"nextDate,omitempty"`
	SpotsAvailable *int     `json:"spotsAvailable,omitempty"`
	Image          string   `json:"image"`
}
