package view

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/yigit/courseapproval/internal/app/models"
)

// Options control terminal rendering
type Options struct {
	NoColor bool
}

type palette struct {
	pending  *color.Color
	approved *color.Color
	muted    *color.Color
	failure  *color.Color
}

func newPalette(opts Options) palette {
	p := palette{
		pending:  color.New(color.FgYellow),
		approved: color.New(color.FgGreen, color.Bold),
		muted:    color.New(color.Faint),
		failure:  color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{p.pending, p.approved, p.muted, p.failure} {
		if opts.NoColor {
			c.DisableColor()
		} else {
			c.EnableColor()
		}
	}
	return p
}

func (p palette) state(s models.CourseState) string {
	switch s {
	case models.StateApproved:
		return p.approved.Sprint("APPROVED")
	case models.StatePending:
		return p.pending.Sprint("PENDING")
	default:
		return p.muted.Sprint("GONE")
	}
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetRowLine(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)
	return table
}

// RenderCourses writes one row per course in the order given.
// Each row shows the actions still available for that course.
func RenderCourses(w io.Writer, courses []models.Course, opts Options) {
	p := newPalette(opts)

	if len(courses) == 0 {
		fmt.Fprintln(w, p.muted.Sprint("No courses."))
		return
	}

	table := newTable(w, []string{"Code", "Title", "Status", "Students", "Actions"})
	for i := range courses {
		c := &courses[i]
		table.Append([]string{
			c.Code,
			c.Title,
			p.state(c.State()),
			fmt.Sprintf("%d/%d", c.ApprovedStudents(), len(c.Students)),
			actions(c),
		})
	}
	table.Render()
}

func actions(c *models.Course) string {
	if c.Approved {
		return "reject"
	}
	return "approve, reject"
}

// RenderStudents writes the students of a single course
func RenderStudents(w io.Writer, course models.Course, opts Options) {
	p := newPalette(opts)

	fmt.Fprintf(w, "%s %s\n", course.Code, p.state(course.State()))
	if len(course.Students) == 0 {
		fmt.Fprintln(w, p.muted.Sprint("No students."))
		return
	}

	table := newTable(w, []string{"#", "ID", "Name", "Status"})
	for i, s := range course.Students {
		status := p.pending.Sprint("PENDING")
		if s.Approved {
			status = p.approved.Sprint("APPROVED")
		}
		table.Append([]string{strconv.Itoa(i + 1), s.ID, s.Name, status})
	}
	table.Render()
}

// RenderError writes a one-line failure notice
func RenderError(w io.Writer, err error, opts Options) {
	p := newPalette(opts)
	fmt.Fprintf(w, "%s %v\n", p.failure.Sprint("error:"), err)
}

// RenderNotice writes a one-line success notice
func RenderNotice(w io.Writer, msg string, opts Options) {
	p := newPalette(opts)
	fmt.Fprintln(w, p.approved.Sprint(msg))
}
