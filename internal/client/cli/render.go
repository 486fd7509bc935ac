package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dmitrijs2005/showcase/internal/client/models"
	"github.com/dmitrijs2005/showcase/internal/filex"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
)

const (
	renderWidth    = 80
	summaryRunes   = 120
	noProjects     = "No projects available."
	noSearchResult = "No projects match your search."
)

var (
	primaryStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: "#DA7756"})
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"})
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"})
	borderStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"})
	chipStyle    = lipgloss.NewStyle().Padding(0, 1).
			Background(lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#374151"})
)

func cardStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderStyle.GetForeground()).
		Padding(0, 2).
		Width(renderWidth)
}

// DetectStyled reports whether f is a terminal that can show colors.
func DetectStyled(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Renderer prints views. With styled off it emits plain text only, which is
// what pipes and tests get.
type Renderer struct {
	w      io.Writer
	styled bool
	now    func() time.Time
	md     *glamour.TermRenderer
}

func NewRenderer(w io.Writer, styled bool) *Renderer {
	return &Renderer{w: w, styled: styled, now: time.Now}
}

func (r *Renderer) paint(s lipgloss.Style, text string) string {
	if !r.styled {
		return text
	}
	return s.Render(text)
}

func (r *Renderer) Info(msg string) {
	fmt.Fprintln(r.w, msg)
}

func (r *Renderer) Success(msg string) {
	fmt.Fprintln(r.w, r.paint(successStyle, msg))
}

func (r *Renderer) Error(msg string) {
	if msg == "" {
		return
	}
	fmt.Fprintln(r.w, r.paint(errorStyle, "Error: "+msg))
}

// ProjectList prints the public gallery page.
func (r *Renderer) ProjectList(items []models.Project, pg *models.Pagination, showPagination bool, query string) {
	if query != "" {
		fmt.Fprintln(r.w, r.paint(mutedStyle, fmt.Sprintf("Search: %q (%d on this page)", query, len(items))))
	}
	if len(items) == 0 {
		if query != "" {
			r.Info(noSearchResult)
		} else {
			r.Info(noProjects)
		}
		return
	}

	for _, p := range items {
		fmt.Fprintln(r.w, r.projectCard(p))
	}

	if showPagination && pg != nil {
		fmt.Fprintln(r.w, r.paint(mutedStyle,
			fmt.Sprintf("Page %d of %d, %d projects. Use 'next', 'prev' or 'list <page>'.", pg.Page, pg.TotalPages, pg.Total)))
	}
}

func (r *Renderer) projectCard(p models.Project) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", r.paint(mutedStyle, fmt.Sprintf("#%d", p.ID)), r.paint(primaryStyle.Bold(true), p.Title))
	if p.Creator != "" {
		fmt.Fprintf(&b, "by %s\n", p.Creator)
	}
	if d := summarize(p.Description, summaryRunes); d != "" {
		b.WriteString(d + "\n")
	}
	if len(p.Tags) > 0 {
		b.WriteString(r.chips(p.Tags) + "\n")
	}
	if len(p.Stack) > 0 {
		b.WriteString(r.paint(mutedStyle, "stack: "+strings.Join(p.Stack, ", ")) + "\n")
	}
	b.WriteString(r.paint(mutedStyle, r.updatedLine(p)))

	if !r.styled {
		return b.String() + "\n"
	}
	return cardStyle().Render(b.String())
}

// ProjectDetail prints one project with the carousel positioned at
// imageIndex.
func (r *Renderer) ProjectDetail(p models.Project, imageIndex int) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", r.paint(primaryStyle.Bold(true), p.Title))
	fmt.Fprintf(&b, "%s\n", r.paint(mutedStyle, fmt.Sprintf("#%d by %s", p.ID, p.Creator)))
	if !p.Active {
		b.WriteString(r.paint(errorStyle, "inactive") + "\n")
	}
	if p.DemoURL != "" {
		fmt.Fprintf(&b, "Demo: %s\n", p.DemoURL)
	}
	if len(p.Stack) > 0 {
		fmt.Fprintf(&b, "Stack: %s\n", r.chips(p.Stack))
	}
	if len(p.Tags) > 0 {
		fmt.Fprintf(&b, "Tags: %s\n", r.chips(p.Tags))
	}
	fmt.Fprintf(&b, "%s\n", r.paint(mutedStyle, r.createdLine(p)+", "+r.updatedLine(p)))
	b.WriteString("\n" + r.markdown(p.Description))
	b.WriteString("\n" + r.imageLine(p.Images, imageIndex))

	if r.styled {
		fmt.Fprintln(r.w, cardStyle().Render(b.String()))
		return
	}
	fmt.Fprintln(r.w, b.String())
}

// ImageLine prints only the carousel position.
func (r *Renderer) ImageLine(images []string, index int) {
	fmt.Fprintln(r.w, r.imageLine(images, index))
}

func (r *Renderer) imageLine(images []string, index int) string {
	if len(images) == 0 {
		return r.paint(mutedStyle, "No images")
	}
	desc := "unreadable image"
	if mt, data, err := filex.ParseDataURI(images[index]); err == nil {
		desc = fmt.Sprintf("%s, %s", mt, humanize.Bytes(uint64(len(data))))
	}
	line := fmt.Sprintf("Image %d/%d: %s", index+1, len(images), desc)
	if len(images) > 1 {
		line += r.paint(mutedStyle, " ('img next' / 'img prev')")
	}
	return line
}

// AdminTable prints the admin overview.
func (r *Renderer) AdminTable(items []models.Project) {
	if len(items) == 0 {
		r.Info(noProjects)
		return
	}

	rows := make([][]string, 0, len(items))
	for _, p := range items {
		active := "yes"
		if !p.Active {
			active = "no"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", p.ID),
			summarize(p.Title, 32),
			summarize(p.Creator, 20),
			active,
			r.ago(p.UpdatedAt),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("ID", "TITLE", "CREATOR", "ACTIVE", "UPDATED").
		Rows(rows...)
	if r.styled {
		t = t.BorderStyle(borderStyle).StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return primaryStyle.Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	} else {
		t = t.StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		})
	}
	fmt.Fprintln(r.w, t.String())
}

func (r *Renderer) chips(items []string) string {
	if !r.styled {
		return "[" + strings.Join(items, "] [") + "]"
	}
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = chipStyle.Render(it)
	}
	return strings.Join(out, " ")
}

// markdown renders descriptions through glamour on a terminal and falls back
// to the raw text otherwise.
func (r *Renderer) markdown(text string) string {
	if !r.styled || strings.TrimSpace(text) == "" {
		return text
	}
	if r.md == nil {
		md, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(renderWidth-6),
		)
		if err != nil {
			return text
		}
		r.md = md
	}
	out, err := r.md.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimSpace(out)
}

func (r *Renderer) createdLine(p models.Project) string {
	return "created " + r.ago(p.CreatedAt)
}

func (r *Renderer) updatedLine(p models.Project) string {
	return "updated " + r.ago(p.UpdatedAt)
}

func (r *Renderer) ago(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return humanize.RelTime(t, r.now(), "ago", "from now")
}

func summarize(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-3]) + "..."
}
