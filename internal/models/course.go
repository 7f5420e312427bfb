// Package models defines the Arunika data model. JSON tags match the
// stored schema of each slice; validate tags are checked when a slice is
// loaded back from the store.
package models

// AssetType classifies a lesson attachment.
type AssetType string

const (
	AssetFile        AssetType = "file"
	AssetSpreadsheet AssetType = "spreadsheet"
	AssetLink        AssetType = "link"
)

// Valid reports whether t is one of the known asset kinds.
func (t AssetType) Valid() bool {
	switch t {
	case AssetFile, AssetSpreadsheet, AssetLink:
		return true
	}
	return false
}

// Asset is a downloadable or linked resource attached to a lesson.
type Asset struct {
	ID   string    `json:"id" validate:"required"`
	Name string    `json:"name"`
	URL  string    `json:"url"`
	Type AssetType `json:"type" validate:"oneof=file spreadsheet link"`
}

// Lesson belongs to exactly one Course.
type Lesson struct {
	ID          string  `json:"id" validate:"required"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	VideoURL    string  `json:"videoUrl"`
	Duration    string  `json:"duration"`
	Content     string  `json:"content"`
	Assets      []Asset `json:"assets" validate:"required,dive"`
}

// Author is embedded in each Course; it is not shared between courses.
type Author struct {
	Name      string  `json:"name"`
	Role      string  `json:"role"`
	Avatar    string  `json:"avatar"`
	Bio       string  `json:"bio"`
	Rating    float64 `json:"rating" validate:"gte=0,lte=5"`
	Whatsapp  string  `json:"whatsapp,omitempty"`
	Instagram string  `json:"instagram,omitempty"`
	Linkedin  string  `json:"linkedin,omitempty"`
	Website   string  `json:"website,omitempty"`
}

// Course is the unit the catalog stores and replaces as a whole.
type Course struct {
	ID          string   `json:"id" validate:"required"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Thumbnail   string   `json:"thumbnail"`
	IntroImage  string   `json:"introImage,omitempty"`
	Author      *Author  `json:"author,omitempty"`
	Lessons     []Lesson `json:"lessons" validate:"required,dive"`
	Reviews     *int     `json:"reviews,omitempty" validate:"omitempty,gte=0"`
	IsPublic    *bool    `json:"isPublic,omitempty"`
}

// Public reports the visibility flag; an absent flag means not public.
func (c Course) Public() bool {
	return c.IsPublic != nil && *c.IsPublic
}

// LessonByID returns the lesson with id and whether it exists.
func (c Course) LessonByID(id string) (Lesson, bool) {
	for _, l := range c.Lessons {
		if l.ID == id {
			return l, true
		}
	}
	return Lesson{}, false
}

// Clone returns a deep copy, so a replaced course never aliases the old one.
func (c Course) Clone() Course {
	out := c
	if c.Author != nil {
		a := *c.Author
		out.Author = &a
	}
	if c.Reviews != nil {
		r := *c.Reviews
		out.Reviews = &r
	}
	if c.IsPublic != nil {
		p := *c.IsPublic
		out.IsPublic = &p
	}
	if c.Lessons != nil {
		out.Lessons = make([]Lesson, len(c.Lessons))
		for i, l := range c.Lessons {
			out.Lessons[i] = l
			if l.Assets != nil {
				out.Lessons[i].Assets = append([]Asset(nil), l.Assets...)
			}
		}
	}
	return out
}

// CloneCourses deep-copies a catalog.
func CloneCourses(in []Course) []Course {
	if in == nil {
		return nil
	}
	out := make([]Course, len(in))
	for i, c := range in {
		out[i] = c.Clone()
	}
	return out
}

// Normalize replaces nil lesson and asset lists with empty ones so the
// course passes the stored-shape check after a round trip.
func (c *Course) Normalize() {
	if c.Lessons == nil {
		c.Lessons = []Lesson{}
	}
	for i := range c.Lessons {
		if c.Lessons[i].Assets == nil {
			c.Lessons[i].Assets = []Asset{}
		}
	}
}
