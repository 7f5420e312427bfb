package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/arunika/internal/models"
)

const barWidth = 20

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	badgeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("63")).Padding(0, 1)
	cardStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(0, 1)
	headerStyle = lipgloss.NewStyle().Bold(true).Border(lipgloss.NormalBorder(), false, false, true, false)
)

// progressBar draws pct as a fixed-width bar followed by the number.
func progressBar(pct int) string {
	pct = max(0, min(100, pct))
	filled := pct * barWidth / 100
	return doneStyle.Render(strings.Repeat("█", filled)) +
		mutedStyle.Render(strings.Repeat("░", barWidth-filled)) +
		fmt.Sprintf(" %d%%", pct)
}

func renderHeader(brand models.Brand, status string) string {
	name := titleStyle.Render(brand.Name)
	if brand.Logo != "" {
		name += mutedStyle.Render(" [logo]")
	}
	if status == "" {
		return headerStyle.Render(name)
	}
	return headerStyle.Render(name + "  " + badgeStyle.Render(status))
}

func renderCourseCard(c models.Course, pct int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(c.Title))
	if c.Public() {
		b.WriteString(" " + badgeStyle.Render("public"))
	}
	b.WriteString("\n" + mutedStyle.Render(c.ID))
	if c.Category != "" {
		b.WriteString(mutedStyle.Render(" · " + c.Category))
	}
	if c.Author != nil && c.Author.Name != "" {
		b.WriteString("\n" + c.Author.Name)
		if c.Author.Role != "" {
			b.WriteString(mutedStyle.Render(", " + c.Author.Role))
		}
	}
	b.WriteString(fmt.Sprintf("\n%d lessons  %s", len(c.Lessons), progressBar(pct)))
	return cardStyle.Render(b.String())
}

func renderDashboard(courses []models.Course, completion func(models.Course) int) string {
	if len(courses) == 0 {
		return mutedStyle.Render("No courses yet.")
	}
	cards := make([]string, 0, len(courses))
	for _, c := range courses {
		cards = append(cards, renderCourseCard(c, completion(c)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// renderPlayer shows the course outline with the active lesson expanded.
func renderPlayer(c models.Course, active models.Lesson, done func(string) bool, pct int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(c.Title) + "  " + progressBar(pct) + "\n")
	if c.Description != "" {
		b.WriteString(mutedStyle.Render(c.Description) + "\n")
	}
	b.WriteString("\n")

	for i, l := range c.Lessons {
		mark := "○"
		if done(l.ID) {
			mark = doneStyle.Render("✓")
		}
		line := fmt.Sprintf("%s %d. %s %s", mark, i+1, l.Title, mutedStyle.Render("("+l.ID+", "+l.Duration+")"))
		if l.ID == active.ID {
			line = "▸ " + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	if active.ID != "" {
		b.WriteString("\n" + renderLesson(active))
	}
	return b.String()
}

func renderLesson(l models.Lesson) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(l.Title))
	if l.Description != "" {
		b.WriteString("\n" + l.Description)
	}
	if l.VideoURL != "" {
		b.WriteString("\n" + mutedStyle.Render("video: ") + l.VideoURL)
	}
	if l.Content != "" {
		b.WriteString("\n\n" + l.Content)
	}
	if len(l.Assets) > 0 {
		b.WriteString("\n\n" + mutedStyle.Render("Resources"))
		for _, a := range l.Assets {
			b.WriteString(fmt.Sprintf("\n  [%s] %s %s %s", a.Type, a.Name, a.URL, mutedStyle.Render(a.ID)))
		}
	}
	return cardStyle.Render(b.String())
}

func renderTokens(tokens []models.ShareToken, valid func(models.ShareToken) bool) string {
	if len(tokens) == 0 {
		return mutedStyle.Render("No share tokens.")
	}
	var b strings.Builder
	for _, t := range tokens {
		status := doneStyle.Render("active")
		if !valid(t) {
			status = errorStyle.Render("expired")
		}
		scope := t.CourseID
		if t.LessonID != "" {
			scope += "/" + t.LessonID
		}
		expires := "never"
		if exp, ok := t.Expiry(); ok {
			expires = exp.Format("2006-01-02 15:04")
		}
		b.WriteString(fmt.Sprintf("%s  %s  %s  %s\n", t.Token, mutedStyle.Render(scope), mutedStyle.Render("expires "+expires), status))
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderError(msg string) string {
	return errorStyle.Render(msg)
}
