package cinemenu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/samber/lo"
)

// DefaultPause keeps a success message on screen before the next redraw
const DefaultPause = 2 * time.Second

const invalidOption = "Invalid option. Please try again."

// ClearConsole moves the cursor home and wipes the terminal
func ClearConsole(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

type NavigatorConfig struct {
	Service TMDBService
	In      io.Reader
	Out     io.Writer
	// Pause after a successful mutation. Zero disables it.
	Pause time.Duration
	// Clear wipes the console before each screen. Defaults to ClearConsole.
	Clear func(io.Writer)
}

// Navigator runs the interactive menu. It is driven by a single loop over
// Screen values, so going back and forth never grows the call stack.
type Navigator struct {
	svc   TMDBService
	in    *bufio.Reader
	out   io.Writer
	pause time.Duration
	clear func(io.Writer)

	screen Screen
	query  string
	movies []MovieSummary
	detail *MovieDetail
	// notice is printed under the next cleared screen
	notice string
}

func NewNavigator(config *NavigatorConfig) (*Navigator, error) {
	if config == nil || config.Service == nil {
		return nil, errors.New("a TMDB service is required")
	}
	if config.In == nil || config.Out == nil {
		return nil, errors.New("both input and output are required")
	}
	clear := config.Clear
	if clear == nil {
		clear = ClearConsole
	}
	return &Navigator{
		svc:    config.Service,
		in:     bufio.NewReader(config.In),
		out:    config.Out,
		pause:  config.Pause,
		clear:  clear,
		screen: Screen{Kind: MainMenuScreen},
	}, nil
}

// Screen is the state the navigator is currently in
func (n *Navigator) Screen() Screen {
	return n.screen
}

// Run blocks until the user exits or input runs out
func (n *Navigator) Run(ctx context.Context) error {
	for n.screen.Kind != ExitScreen {
		next, err := n.step(ctx)
		if errors.Is(err, io.EOF) {
			next = Screen{Kind: ExitScreen}
		} else if err != nil {
			return err
		}
		log.WithFields(log.Fields{
			"from": n.screen.Kind,
			"to":   next.Kind,
		}).Debug("Changing screen")
		n.screen = next
	}
	fmt.Fprintln(n.out, "Exiting the program.")
	return nil
}

func (n *Navigator) step(ctx context.Context) (Screen, error) {
	switch n.screen.Kind {
	case MainMenuScreen:
		return n.mainMenu()
	case DetailScreen:
		return n.detailScreen(ctx)
	default:
		if _, ok := listScreens[n.screen.Kind]; ok {
			return n.listScreen(ctx, n.screen.Kind)
		}
		return Screen{}, fmt.Errorf("no handler for screen %v", n.screen.Kind)
	}
}

func (n *Navigator) draw() {
	n.clear(n.out)
	if n.notice != "" {
		fmt.Fprintln(n.out, n.notice)
		n.notice = ""
	}
}

func (n *Navigator) readLine() (string, error) {
	line, err := n.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (n *Navigator) prompt(label string) (string, error) {
	fmt.Fprint(n.out, label)
	return n.readLine()
}

// mutate runs a state changing call, telling the user how it went
func (n *Navigator) mutate(success, failure string, call func() error) {
	if err := call(); err != nil {
		n.notice = Describe(failure, err)
		return
	}
	fmt.Fprintln(n.out, success)
	if n.pause > 0 {
		time.Sleep(n.pause)
	}
}

// pick asks for a list position and resolves it against the movies on screen
func (n *Navigator) pick(label string) (MovieSummary, bool, error) {
	in, err := n.prompt(label)
	if err != nil {
		return MovieSummary{}, false, err
	}
	pos, err := ParseSelection(in)
	if err != nil {
		n.notice = "Invalid number."
		return MovieSummary{}, false, nil
	}
	m, err := MovieAt(n.movies, pos)
	if err != nil {
		n.notice = "Invalid number."
		return MovieSummary{}, false, nil
	}
	return m, true, nil
}

func (n *Navigator) mainMenu() (Screen, error) {
	n.draw()
	fmt.Fprintln(n.out, "\nThe Movie Database CLI")
	fmt.Fprintln(n.out, "\n1. Discover Movies")
	fmt.Fprintln(n.out, "2. Search Movies")
	fmt.Fprintln(n.out, "3. View Watchlist")
	fmt.Fprintln(n.out, "4. View Favorites")
	fmt.Fprintln(n.out, "5. View Rated Movies")
	fmt.Fprintln(n.out, "6. Exit")
	for {
		choice, err := n.prompt("\nChoice: ")
		if err != nil {
			return Screen{}, err
		}
		kind, ok := menuScreens[choice]
		if !ok {
			fmt.Fprintln(n.out, invalidOption)
			continue
		}
		if kind == SearchScreen {
			if err := n.readQuery(); err != nil {
				return Screen{}, err
			}
		}
		return Screen{Kind: kind}, nil
	}
}

func (n *Navigator) readQuery() error {
	for {
		q, err := n.prompt("\nSearch: ")
		if err != nil {
			return err
		}
		if q != "" {
			n.query = q
			return nil
		}
	}
}

func (n *Navigator) listScreen(ctx context.Context, kind ScreenKind) (Screen, error) {
	cfg := listScreens[kind]
	movies, err := cfg.fetch(ctx, n.svc, n.query)
	if err != nil {
		n.notice = Describe(cfg.failure, err)
		return Screen{Kind: MainMenuScreen}, nil
	}
	n.movies = movies
	if len(movies) == 0 && cfg.empty != "" {
		n.notice = cfg.empty
		return Screen{Kind: MainMenuScreen}, nil
	}

	n.draw()
	fmt.Fprintf(n.out, "\n%v (%d movies found)\n\n", cfg.heading, len(movies))
	for _, entry := range RenderList(movies, cfg.mode) {
		fmt.Fprintln(n.out, entry)
	}
	fmt.Fprintln(n.out, "\nSelect a movie number to view details")
	for _, c := range cfg.commands {
		fmt.Fprintln(n.out, c.legend)
	}
	fmt.Fprintln(n.out, "Enter 0 to go back")

	for {
		in, err := n.prompt("\nOption: ")
		if err != nil {
			return Screen{}, err
		}
		if c, ok := lo.Find(cfg.commands, func(c listCommand) bool {
			return c.key == strings.ToLower(in)
		}); ok {
			return c.run(ctx, n, kind)
		}
		pos, err := ParseSelection(in)
		if err != nil {
			fmt.Fprintln(n.out, invalidOption)
			continue
		}
		if pos == 0 {
			return Screen{Kind: MainMenuScreen}, nil
		}
		m, err := MovieAt(n.movies, pos)
		if err != nil {
			continue
		}
		d, err := n.svc.Details(ctx, m.ID)
		if err != nil {
			n.notice = Describe("fetch movie details", err)
			return Screen{Kind: kind}, nil
		}
		n.detail = d
		return Screen{Kind: DetailScreen, Origin: kind, ShowActions: cfg.showActions}, nil
	}
}

func (n *Navigator) detailScreen(ctx context.Context) (Screen, error) {
	if n.detail == nil {
		return Screen{Kind: n.screen.Origin}, nil
	}
	n.draw()
	fmt.Fprint(n.out, RenderDetail(n.detail, n.screen.ShowActions))
	for {
		in, err := n.prompt("\nOption: ")
		if err != nil {
			return Screen{}, err
		}
		in = strings.ToLower(in)
		switch in {
		case "b":
			return Screen{Kind: n.screen.Origin}, nil
		case "e":
			return Screen{Kind: ExitScreen}, nil
		}
		if n.screen.ShowActions {
			if a, ok := lo.Find(detailActions, func(a detailAction) bool {
				return a.key == in
			}); ok {
				if err := a.run(ctx, n, n.detail.ID); err != nil {
					return Screen{}, err
				}
				return n.screen, nil
			}
		}
		fmt.Fprintln(n.out, invalidOption)
	}
}

// removeCommand builds the "x" command of a personal list. The list is fetched
// again afterwards instead of being edited in place.
func removeCommand(legend, success, failure string, remove func(context.Context, TMDBService, int) error) listCommand {
	return listCommand{
		key:    "x",
		legend: legend,
		run: func(ctx context.Context, n *Navigator, kind ScreenKind) (Screen, error) {
			m, ok, err := n.pick("\nEnter the number of the movie: ")
			if err != nil {
				return Screen{}, err
			}
			if ok {
				n.mutate(success, failure, func() error {
					return remove(ctx, n.svc, m.ID)
				})
			}
			return Screen{Kind: kind}, nil
		},
	}
}

// editRating replaces the rating of a movie on the rated list. Out of range
// values never reach TMDB.
func editRating(ctx context.Context, n *Navigator, kind ScreenKind) (Screen, error) {
	m, ok, err := n.pick("\nEnter the number of the movie: ")
	if err != nil || !ok {
		return Screen{Kind: kind}, err
	}
	in, err := n.prompt(fmt.Sprintf("\nEnter your new rating (%v to %v): ", MinRating, MaxRating))
	if err != nil {
		return Screen{}, err
	}
	v, err := ParseRating(in)
	if err != nil || !ValidRating(v) {
		n.notice = fmt.Sprintf("Invalid rating. Please enter a value between %v and %v.", MinRating, MaxRating)
		return Screen{Kind: kind}, nil
	}
	n.mutate("Rating updated successfully.", "submit rating", func() error {
		return n.svc.SetRating(ctx, m.ID, v)
	})
	return Screen{Kind: kind}, nil
}

// rateFromDetail submits whatever number the user typed. TMDB is left to
// reject values outside its range.
func rateFromDetail(ctx context.Context, n *Navigator, id int) error {
	in, err := n.prompt(fmt.Sprintf("\nEnter your rating (%v to %v): ", MinRating, MaxRating))
	if err != nil {
		return err
	}
	v, err := ParseRating(in)
	if err != nil {
		n.notice = "Invalid rating. Please enter a number."
		return nil
	}
	n.mutate("Rating submitted successfully.", "submit rating", func() error {
		return n.svc.SetRating(ctx, id, v)
	})
	return nil
}
