// Package dashboard renders the analytics view: per-status stat cards, a
// bar chart of the status distribution, the completion ratio and the most
// recently updated tasks.
package dashboard

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/riordanpawley/taskboard/internal/domain"
	"github.com/riordanpawley/taskboard/internal/ui/styles"
)

// RecentLimit is how many recently updated tasks are listed
const RecentLimit = 5

const labelWidth = 12

// Render draws the dashboard for tasks within width
func Render(tasks []domain.Task, s *styles.Styles, width int) string {
	stats := domain.ComputeStats(tasks)

	sections := []string{
		renderCards(stats, s, width),
		"",
		s.OverlayTitle.Render("Status distribution"),
		renderChart(stats, s, width),
		"",
		s.OverlayTitle.Render("Completion"),
		renderCompletion(stats, s, width),
	}
	if recent := renderRecent(tasks, s, width); recent != "" {
		sections = append(sections, "", s.OverlayTitle.Render("Recently updated"), recent)
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// renderCards draws one stat card for the total and one per status
func renderCards(stats domain.Stats, s *styles.Styles, width int) string {
	cardWidth := max((width-4)/(len(domain.Statuses)+1)-2, 12)

	card := func(label string, value int, color lipgloss.Color) string {
		body := lipgloss.JoinVertical(lipgloss.Center,
			s.StatValue.Foreground(color).Render(fmt.Sprint(value)),
			s.StatLabel.Render(label),
		)
		return s.StatCard.Width(cardWidth).BorderForeground(color).Render(body)
	}

	cards := []string{card("Total", stats.Total, styles.Text)}
	for _, status := range domain.Statuses {
		cards = append(cards, card(status.Label(), stats.Count(status), styles.StatusColor(status)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// renderChart draws a horizontal bar per status, scaled to the largest
func renderChart(stats domain.Stats, s *styles.Styles, width int) string {
	barSpace := max(width-4-labelWidth-6, 10)
	largest := 0
	for _, status := range domain.Statuses {
		largest = max(largest, stats.Count(status))
	}

	rows := make([]string, 0, len(domain.Statuses))
	for _, status := range domain.Statuses {
		n := stats.Count(status)
		bar := 0
		if largest > 0 {
			bar = n * barSpace / largest
		}
		if n > 0 {
			bar = max(bar, 1)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			s.StatLabel.Width(labelWidth).Render(status.Label()),
			lipgloss.NewStyle().Foreground(styles.StatusColor(status)).Render(strings.Repeat("█", bar)),
			s.TaskMeta.Render(fmt.Sprintf(" %d", n)),
		))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderCompletion draws the completed/total ratio as a progress bar
func renderCompletion(stats domain.Stats, s *styles.Styles, width int) string {
	bar := progress.New(
		progress.WithSolidFill(string(styles.Green)),
		progress.WithoutPercentage(),
		progress.WithWidth(max(width-4-labelWidth-6, 10)),
	)
	bar.EmptyColor = string(styles.Surface1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		s.StatLabel.Width(labelWidth).Render(fmt.Sprintf("%d/%d", stats.Completed, stats.Total)),
		bar.ViewAs(stats.CompletionRatio()),
		s.TaskMeta.Render(fmt.Sprintf(" %3.0f%%", stats.CompletionRatio()*100)),
	)
}

// Recent returns up to RecentLimit tasks, most recently updated first
func Recent(tasks []domain.Task) []domain.Task {
	sorted := slices.Clone(tasks)
	slices.SortStableFunc(sorted, func(a, b domain.Task) int {
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})
	return sorted[:min(len(sorted), RecentLimit)]
}

func renderRecent(tasks []domain.Task, s *styles.Styles, width int) string {
	recent := Recent(tasks)
	if len(recent) == 0 {
		return ""
	}

	rows := make([]string, 0, len(recent))
	for _, t := range recent {
		badge := s.StatusBadge(t.Status).Render(t.Status.Label())
		line := ansi.Truncate(t.Title, max(width-4-lipgloss.Width(badge)-2, 8), "…")
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, badge, " ", s.TaskTitle.Render(line)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
