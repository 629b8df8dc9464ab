package slides

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"carousel/internal/domain"
	"carousel/internal/eventbus"
)

// ErrNoSlides is returned when a source yields no slides
var ErrNoSlides = errors.New("no slides found")

const (
	separator      = "---"
	frontMatterTag = "+++"
	maxFileSize    = 1 << 20
)

// Source says where slides come from. The first non-empty field wins, in
// the order Dir, File, Items.
type Source struct {
	Dir   string
	File  string
	Items []string
}

// String describes the source for logs and events
func (s Source) String() string {
	switch {
	case s.Dir != "":
		return "dir:" + s.Dir
	case s.File != "":
		return "file:" + s.File
	case len(s.Items) > 0:
		return "inline"
	default:
		return "defaults"
	}
}

// Loader reads slides from a source
type Loader interface {
	Load(ctx context.Context, src Source) ([]domain.Slide, error)
}

// loader is the concrete implementation
type loader struct {
	bus eventbus.EventBus
}

// NewLoader creates a loader. bus may be nil.
func NewLoader(bus eventbus.EventBus) Loader {
	return &loader{bus: bus}
}

// Load reads the slides of src
func (l *loader) Load(ctx context.Context, src Source) ([]domain.Slide, error) {
	l.publish(eventbus.LoadStartedEvent{Source: src.String()})

	var (
		slides []domain.Slide
		err    error
	)
	switch {
	case src.Dir != "":
		slides, err = LoadDir(ctx, src.Dir)
	case src.File != "":
		slides, err = LoadFile(src.File)
	case len(src.Items) > 0:
		slides = FromItems(src.Items)
	default:
		slides = Defaults()
	}

	if err == nil && len(slides) == 0 {
		err = fmt.Errorf("%w in %s", ErrNoSlides, src)
	}
	if err != nil {
		log.Printf("Failed to load slides from %s: %v", src, err)
		l.publish(eventbus.ErrorEvent{
			Message: fmt.Sprintf("Failed to load slides from %s", src),
			Err:     err,
		})
		return nil, err
	}

	log.Printf("Loaded %d slides from %s", len(slides), src)
	l.publish(eventbus.SlidesLoadedEvent{Source: src.String(), Count: len(slides)})
	return slides, nil
}

func (l *loader) publish(e eventbus.DomainEvent) {
	if l.bus != nil {
		l.bus.Publish(e)
	}
}

// LoadDir reads every regular, non-hidden file directly inside dir as one
// slide, ordered by file name.
func LoadDir(ctx context.Context, dir string) ([]domain.Slide, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read slide directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	slides := make([]domain.Slide, 0, len(names))
	for _, name := range names {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		path := filepath.Join(dir, name)
		data, err := readLimited(path)
		if err != nil {
			log.Printf("Skipping slide %s: %v", path, err)
			continue
		}
		fallback := strings.TrimSuffix(name, filepath.Ext(name))
		slides = append(slides, Parse(string(data), path, fallback))
	}
	return slides, nil
}

// LoadFile reads a file holding several slides separated by "---" lines
func LoadFile(path string) ([]domain.Slide, error) {
	data, err := readLimited(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read slide file: %w", err)
	}
	return Split(string(data), path), nil
}

// Split cuts text into slides at lines consisting only of "---".
// Blank chunks are dropped.
func Split(text, source string) []domain.Slide {
	var (
		slides []domain.Slide
		chunk  strings.Builder
	)
	flush := func() {
		if strings.TrimSpace(chunk.String()) != "" {
			fallback := fmt.Sprintf("Slide %d", len(slides)+1)
			slides = append(slides, Parse(chunk.String(), source, fallback))
		}
		chunk.Reset()
	}

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), maxFileSize)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == separator {
			flush()
			continue
		}
		chunk.WriteString(line)
		chunk.WriteByte('\n')
	}
	flush()
	return slides
}

type frontMatter struct {
	Title string `toml:"title"`
}

// Parse turns the text of one slide into a Slide. The title comes from TOML
// front matter between "+++" lines, else the first non-empty line, else
// fallback.
func Parse(text, source, fallback string) domain.Slide {
	text = strings.TrimLeft(text, "\r\n")
	title := ""

	if strings.HasPrefix(text, frontMatterTag) {
		rest := strings.TrimPrefix(text, frontMatterTag)
		if end := strings.Index(rest, "\n"+frontMatterTag); end >= 0 {
			var fm frontMatter
			if err := toml.Unmarshal([]byte(rest[:end]), &fm); err != nil {
				log.Printf("Ignoring front matter in %s: %v", source, err)
			} else {
				title = strings.TrimSpace(fm.Title)
			}
			text = strings.TrimLeft(rest[end+1+len(frontMatterTag):], "\r\n")
		} else {
			log.Printf("Unclosed front matter in %s, reading as plain text", source)
			text = strings.TrimLeft(rest, "\r\n")
		}
	}

	body := strings.TrimRight(text, " \t\r\n")
	if title == "" {
		first, remainder, _ := strings.Cut(body, "\n")
		title = strings.TrimSpace(strings.TrimLeft(first, "# "))
		body = strings.Trim(remainder, "\r\n")
	}
	if title == "" {
		title = fallback
	}

	return domain.Slide{Title: title, Body: body, Source: source}
}

// FromItems builds title-only slides
func FromItems(items []string) []domain.Slide {
	slides := make([]domain.Slide, 0, len(items))
	for _, item := range items {
		slides = append(slides, domain.Slide{Title: item})
	}
	return slides
}

// Defaults are the slides shown when nothing is configured
func Defaults() []domain.Slide {
	items := make([]string, 8)
	for i := range items {
		items[i] = fmt.Sprintf("Slide %d", i+1)
	}
	return FromItems(items)
}

func readLimited(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("%s is larger than %d bytes", path, maxFileSize)
	}
	return os.ReadFile(path)
}
