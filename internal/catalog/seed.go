package catalog

import "github.com/dmitrijs2005/arunika/internal/models"

// Seed returns the catalog used when nothing valid is stored.
func Seed() []models.Course {
	public := true
	reviews := 128

	return []models.Course{
		{
			ID:          "course-1",
			Title:       "Fotografi Dasar",
			Category:    "Photography",
			Description: "Exposure, composition and light for people who just bought their first camera.",
			Thumbnail:   "https://images.unsplash.com/photo-1516035069371-29a1b244cc32",
			IntroImage:  "https://images.unsplash.com/photo-1502920917128-1aa500764cbd",
			Author: &models.Author{
				Name:      "Rina Kusuma",
				Role:      "Documentary photographer",
				Avatar:    "https://i.pravatar.cc/150?img=47",
				Bio:       "Ten years shooting for magazines across Java and Bali.",
				Rating:    4.8,
				Instagram: "rina.kusuma",
				Website:   "https://rinakusuma.example",
			},
			Reviews:  &reviews,
			IsPublic: &public,
			Lessons: []models.Lesson{
				{
					ID:          "lesson-1",
					Title:       "Knowing your camera",
					Description: "Modes, dials and the menu items that matter.",
					VideoURL:    "https://www.youtube.com/embed/V7z7BAZdt2M",
					Duration:    "12:40",
					Content:     "Start in aperture priority and learn one dial at a time.",
					Assets: []models.Asset{
						{ID: "asset-1", Name: "Camera checklist", URL: "https://files.example/checklist.pdf", Type: models.AssetFile},
					},
				},
				{
					ID:          "lesson-2",
					Title:       "The exposure triangle",
					Description: "Aperture, shutter speed and ISO together.",
					VideoURL:    "https://www.youtube.com/embed/LxO-6rlihSg",
					Duration:    "18:05",
					Content:     "Change one setting, watch the other two compensate.",
					Assets: []models.Asset{
						{ID: "asset-2", Name: "Exposure worksheet", URL: "https://files.example/exposure.xlsx", Type: models.AssetSpreadsheet},
					},
				},
				{
					ID:          "lesson-3",
					Title:       "Composition",
					Description: "Rule of thirds, leading lines and when to break them.",
					VideoURL:    "https://www.youtube.com/embed/7ZVyNjKSr0M",
					Duration:    "15:22",
					Content:     "Walk around your subject before you press the shutter.",
					Assets:      []models.Asset{},
				},
				{
					ID:          "lesson-4",
					Title:       "Natural light",
					Description: "Golden hour, overcast skies and window light.",
					VideoURL:    "https://www.youtube.com/embed/2G3v2uG9b_8",
					Duration:    "14:10",
					Content:     "Shoot the same scene at three times of day.",
					Assets: []models.Asset{
						{ID: "asset-3", Name: "Light reference board", URL: "https://boards.example/light", Type: models.AssetLink},
					},
				},
			},
		},
		{
			ID:          "course-2",
			Title:       "Keuangan Pribadi",
			Category:    "Finance",
			Description: "Budgeting, saving and a first look at investing.",
			Thumbnail:   "https://images.unsplash.com/photo-1554224155-6726b3ff858f",
			Author: &models.Author{
				Name:     "Adi Pratama",
				Role:     "Financial planner",
				Avatar:   "https://i.pravatar.cc/150?img=12",
				Bio:      "Helps young families plan their money.",
				Rating:   4.6,
				Whatsapp: "+6281200000000",
				Linkedin: "adi-pratama",
			},
			Lessons: []models.Lesson{
				{
					ID:          "lesson-5",
					Title:       "Where the money goes",
					Description: "Track a month of spending.",
					VideoURL:    "https://www.youtube.com/embed/sVKQn2I4HDM",
					Duration:    "09:30",
					Content:     "Write everything down for thirty days.",
					Assets: []models.Asset{
						{ID: "asset-4", Name: "Budget template", URL: "https://files.example/budget.xlsx", Type: models.AssetSpreadsheet},
					},
				},
				{
					ID:          "lesson-6",
					Title:       "Emergency fund",
					Description: "How much, where to keep it.",
					VideoURL:    "https://www.youtube.com/embed/fVToMS2Q3XQ",
					Duration:    "11:02",
					Content:     "Three to six months of expenses, kept liquid.",
					Assets:      []models.Asset{},
				},
			},
		},
	}
}
