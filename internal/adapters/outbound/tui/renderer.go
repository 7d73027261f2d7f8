package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/abdidvp/matchscore/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// ── warm palette ──
var (
	accent    = lipgloss.Color("#D97706") // amber
	fg        = lipgloss.Color("#E8E6E3") // warm light gray
	dim       = lipgloss.Color("#6B7280") // muted gray
	faint     = lipgloss.Color("#3F3F46") // very dim
	success   = lipgloss.Color("#22C55E") // green
	danger    = lipgloss.Color("#EF4444") // red
	warning   = lipgloss.Color("#F59E0B") // amber-yellow
	skipColor = lipgloss.Color("#4B5563") // dark gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	tierColors = map[string]lipgloss.Color{
		"excellent": success,
		"strong":    lipgloss.Color("#A3E635"), // lime
		"fair":      warning,
		"weak":      danger,
	}

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	skipStyle     = lipgloss.NewStyle().Foreground(skipColor)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	factorStyle   = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderMatch formats a single match breakdown for terminal output.
func RenderMatch(ms *domain.MatchScore) string {
	var b strings.Builder

	// ── Header ──
	tier := ms.Tier()
	title := headerStyle.Render("matchscore")
	subtitle := dimStyle.Render(fmt.Sprintf("%s  ×  %s", ms.EngineerID, ms.JobID))
	scoreStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(tierColor(tier)).
		Render(fmt.Sprintf("%d / 100", ms.Overall))
	tierStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(tierColor(tier)).
		Render(tier)

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + scoreStyled + "  " + tierStyled))
	b.WriteString("\n\n")

	// ── Factors ──
	for _, f := range ms.Factors {
		renderFactor(&b, f)
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n")
	if ms.Regime != "" {
		b.WriteString("  " + dimStyle.Render("regime: "+ms.Regime) + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

func renderFactor(b *strings.Builder, f domain.FactorScore) {
	name := factorStyle.Render(padRight(f.Name, 20))
	weight := dimStyle.Render(fmt.Sprintf("×%.2f", f.Weight))

	if !f.Applicable {
		fmt.Fprintf(b, "  %s %s  %s %s\n",
			skipStyle.Render(padRight(f.Name, 20)),
			skipStyle.Render(strings.Repeat("░", 20)),
			skipStyle.Render("n/a"),
			weight,
		)
		if f.Detail != "" {
			fmt.Fprintf(b, "    %s\n", skipStyle.Render(f.Detail))
		}
		return
	}

	score := int(f.Score + 0.5)
	scoreText := lipgloss.NewStyle().Bold(true).Foreground(scoreColor(score)).Render(fmt.Sprintf("%3d", score))
	fmt.Fprintf(b, "  %s %s  %s %s\n", name, coloredBar(score, 20), scoreText, weight)
	if f.Detail != "" {
		fmt.Fprintf(b, "    %s\n", faintStyle.Render(f.Detail))
	}
}

// RenderRanking formats a ranked list. byJob selects whether each row is
// labelled with the job id (ranking jobs for an engineer) or the engineer id.
func RenderRanking(title string, ranked []domain.RankedMatch, byJob bool) string {
	if len(ranked) == 0 {
		return "  " + dimStyle.Render("No matches found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render(title) + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for i, r := range ranked {
		label := r.EngineerID
		if byJob {
			label = r.JobID
		}
		overall := r.Score.Overall
		scoreStyled := lipgloss.NewStyle().
			Foreground(scoreColor(overall)).
			Render(fmt.Sprintf("%3d", overall))

		fmt.Fprintf(&b, "  %s  %s %s  %s  %s\n",
			dimStyle.Render(fmt.Sprintf("%2d.", i+1)),
			padRight(label, 24),
			coloredBar(overall, 16),
			scoreStyled,
			dimStyle.Render(r.Score.Tier()),
		)
	}

	return b.String()
}

// RenderWeights formats a weight table, keys in factor order.
func RenderWeights(w domain.WeightConfig, source string) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Factor Weights") + "  " + dimStyle.Render(source) + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 40)) + "\n\n")

	total := 0.0
	for _, f := range domain.ValidFactors {
		total += w.Weight(f)
	}

	for _, f := range orderedFactors(w) {
		v := w.Weight(f)
		share := 0
		if total > 0 {
			share = int(v/total*100 + 0.5)
		}
		fmt.Fprintf(&b, "  %s %6.2f  %s\n",
			padRight(f, 20), v, dimStyle.Render(fmt.Sprintf("%d%%", share)))
	}
	return b.String()
}

// RenderApplication formats a stamped application.
func RenderApplication(app *domain.Application) string {
	scoreStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(scoreColor(app.MatchScore)).
		Render(fmt.Sprintf("%d/100", app.MatchScore))
	return fmt.Sprintf("  %s %s\n  %s %s × %s\n  %s %s\n",
		dimStyle.Render("application"), app.ID,
		dimStyle.Render("pair       "), app.EngineerID, app.JobID,
		dimStyle.Render("match score"), scoreStyled,
	)
}

func orderedFactors(w domain.WeightConfig) []string {
	keys := append([]string(nil), domain.ValidFactors...)
	index := make(map[string]int, len(keys))
	for i, k := range keys {
		index[k] = i
	}
	for k := range w {
		if _, ok := index[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.SliceStable(keys[len(domain.ValidFactors):], func(i, j int) bool {
		rest := keys[len(domain.ValidFactors):]
		return rest[i] < rest[j]
	})
	return keys
}

func coloredBar(score, width int) string {
	filled := max(0, min(score*width/100, width))
	empty := width - filled

	color := scoreColor(score)
	filledStr := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyStr := lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}

func scoreColor(score int) lipgloss.Color {
	switch {
	case score >= 80:
		return success
	case score >= 60:
		return lipgloss.Color("#A3E635") // lime
	case score >= 40:
		return warning
	default:
		return danger
	}
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func tierColor(tier string) lipgloss.Color {
	if c, ok := tierColors[tier]; ok {
		return c
	}
	return fg
}
