package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/yigit/courseapproval/internal/client"
	"github.com/yigit/courseapproval/internal/pkg/logger"
	"github.com/yigit/courseapproval/internal/view"
)

const defaultServer = "http://localhost:5000"

type session struct {
	cache *client.Cache
	opts  view.Options
	out   io.Writer
	errw  io.Writer
}

func newApp(out, errw io.Writer) *cli.App {
	return &cli.App{
		Name:      "coursectl",
		Usage:     "review and decide pending courses",
		Writer:    out,
		ErrWriter: errw,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "server",
				Aliases: []string{"s"},
				Value:   defaultServer,
				Usage:   "base URL of the course approval API",
				EnvVars: []string{"COURSECTL_SERVER"},
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: 10 * time.Second,
				Usage: "per-request timeout",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable colored output (also when NO_COLOR is set to any value)",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log client activity to stderr",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "list all courses",
				Action: withSession(listCourses),
			},
			{
				Name:      "show",
				Usage:     "show the students of a course",
				ArgsUsage: "<code>",
				Action:    withSession(showCourse),
			},
			{
				Name:      "approve",
				Usage:     "approve a course",
				ArgsUsage: "<code>",
				Action:    withSession(approveCourse),
			},
			{
				Name:      "reject",
				Usage:     "reject (delete) a course",
				ArgsUsage: "<code>",
				Action:    withSession(rejectCourse),
			},
			{
				Name:  "student",
				Usage: "decide on a student of a course",
				Subcommands: []*cli.Command{
					{
						Name:      "approve",
						Usage:     "approve a student",
						ArgsUsage: "<code> <studentId>",
						Action:    withSession(approveStudent),
					},
					{
						Name:      "reject",
						Usage:     "reject a student",
						ArgsUsage: "<code> <studentId>",
						Action:    withSession(rejectStudent),
					},
				},
			},
		},
	}
}

// withSession loads the course cache before running the command
func withSession(fn func(*cli.Context, *session) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		lgr := zerolog.Nop()
		if c.Bool("verbose") {
			lgr = logger.Configure(logger.Config{Level: logger.DebugLevel, Pretty: true, Output: c.App.ErrWriter})
		}

		opts := client.DefaultOptions()
		opts.Timeout = c.Duration("timeout")

		s := &session{
			cache: client.NewCache(client.New(c.String("server"), opts), lgr),
			opts:  view.Options{NoColor: c.Bool("no-color") || os.Getenv("NO_COLOR") != ""},
			out:   c.App.Writer,
			errw:  c.App.ErrWriter,
		}
		if err := s.cache.Load(c.Context); err != nil {
			return s.fail(err)
		}
		return fn(c, s)
	}
}

func (s *session) fail(err error) error {
	view.RenderError(s.errw, err, s.opts)
	return cli.Exit("", 1)
}

func args(c *cli.Context, names ...string) ([]string, error) {
	if c.NArg() != len(names) {
		return nil, cli.Exit(fmt.Sprintf("usage: %s %s", c.Command.HelpName, c.Command.ArgsUsage), 2)
	}
	return c.Args().Slice(), nil
}

func listCourses(_ *cli.Context, s *session) error {
	view.RenderCourses(s.out, s.cache.Courses(), s.opts)
	return nil
}

func showCourse(c *cli.Context, s *session) error {
	a, err := args(c, "code")
	if err != nil {
		return err
	}
	course, ok := s.cache.Get(a[0])
	if !ok {
		return s.fail(fmt.Errorf("no course with code %s", a[0]))
	}
	view.RenderStudents(s.out, course, s.opts)
	return nil
}

func approveCourse(c *cli.Context, s *session) error {
	a, err := args(c, "code")
	if err != nil {
		return err
	}
	if err := s.cache.Approve(c.Context, a[0]); err != nil {
		return s.failAndRender(err)
	}
	view.RenderNotice(s.out, fmt.Sprintf("Course %s approved", a[0]), s.opts)
	view.RenderCourses(s.out, s.cache.Courses(), s.opts)
	return nil
}

func rejectCourse(c *cli.Context, s *session) error {
	a, err := args(c, "code")
	if err != nil {
		return err
	}
	if err := s.cache.Reject(c.Context, a[0]); err != nil {
		return s.failAndRender(err)
	}
	view.RenderNotice(s.out, fmt.Sprintf("Course %s rejected", a[0]), s.opts)
	view.RenderCourses(s.out, s.cache.Courses(), s.opts)
	return nil
}

func approveStudent(c *cli.Context, s *session) error {
	return decideStudent(c, s, true)
}

func rejectStudent(c *cli.Context, s *session) error {
	return decideStudent(c, s, false)
}

func decideStudent(c *cli.Context, s *session, approve bool) error {
	a, err := args(c, "code", "studentId")
	if err != nil {
		return err
	}
	code, studentID := a[0], a[1]

	verb := "rejected"
	decide := s.cache.RejectStudent
	if approve {
		verb = "approved"
		decide = s.cache.ApproveStudent
	}
	if err := decide(c.Context, code, studentID); err != nil {
		return s.fail(err)
	}

	view.RenderNotice(s.out, fmt.Sprintf("Student %s %s for course %s", studentID, verb, code), s.opts)
	if course, ok := s.cache.Get(code); ok {
		view.RenderStudents(s.out, course, s.opts)
	}
	return nil
}

// failAndRender reports err and still shows the list, which may have dropped a course that no longer exists
func (s *session) failAndRender(err error) error {
	view.RenderError(s.errw, err, s.opts)
	if client.IsNotFound(err) {
		view.RenderCourses(s.out, s.cache.Courses(), s.opts)
	}
	return cli.Exit("", 1)
}
