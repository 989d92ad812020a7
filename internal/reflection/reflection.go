// Package reflection picks a reading-reflection prompt for a book from a
// static question bank, keyed by the book's genres and reading progress.
package reflection

import (
	_ "embed"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed questions.yaml
var defaultBankYAML []byte

// nearEndRatio is the chapter/total ratio past which conclusion prompts join the pool.
const nearEndRatio = 0.8

const generalBucket = "general"

type Question struct {
	Question string `yaml:"question" json:"question"`
	Context  string `yaml:"context" json:"context"`
}

type Bucket struct {
	Name      string     `yaml:"name"`
	Questions []Question `yaml:"questions"`
}

type Bank struct {
	General    []Question `yaml:"general"`
	Conclusion []Question `yaml:"conclusion"`
	Genres     []Bucket   `yaml:"genres"`
}

// LoadBank parses a YAML question bank. The general pool must not be empty.
func LoadBank(data []byte) (*Bank, error) {
	var b Bank
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parse question bank: %w", err)
	}
	if len(b.General) == 0 {
		return nil, errors.New("question bank: general pool is empty")
	}
	for i := range b.Genres {
		b.Genres[i].Name = strings.ToLower(strings.TrimSpace(b.Genres[i].Name))
		if b.Genres[i].Name == "" {
			return nil, fmt.Errorf("question bank: genre bucket %d has no name", i)
		}
	}
	return &b, nil
}

var defaultBank = sync.OnceValue(func() *Bank {
	b, err := LoadBank(defaultBankYAML)
	if err != nil {
		panic(err)
	}
	return b
})

// DefaultBank returns the embedded question bank.
func DefaultBank() *Bank { return defaultBank() }

// Progress is a chapter position. Zero values mean unknown.
type Progress struct {
	Chapter int
	Total   int
}

func (p *Progress) nearEnd() bool {
	if p == nil || p.Chapter <= 0 || p.Total <= 0 {
		return false
	}
	return float64(p.Chapter)/float64(p.Total) > nearEndRatio
}

// Pool returns the general questions followed by every bucket whose name
// contains, or is contained in, one of genres (case-insensitive), then the
// conclusion questions when progress is past 80%. "general" is itself a
// bucket name, and an empty genre is contained in every name.
func (b *Bank) Pool(genres []string, progress *Progress) []Question {
	pool := append([]Question{}, b.General...)
	buckets := append([]Bucket{{Name: generalBucket, Questions: b.General}}, b.Genres...)
	for _, g := range genres {
		genre := strings.ToLower(g)
		for _, bucket := range buckets {
			if strings.Contains(genre, bucket.Name) || strings.Contains(bucket.Name, genre) {
				pool = append(pool, bucket.Questions...)
			}
		}
	}
	if progress.nearEnd() {
		pool = append(pool, b.Conclusion...)
	}
	return pool
}

// Selector draws uniformly from a bank's pool.
type Selector struct {
	bank *Bank

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSelector uses src for draws, or the global generator when src is nil.
func NewSelector(bank *Bank, src rand.Source) *Selector {
	if bank == nil {
		bank = DefaultBank()
	}
	s := &Selector{bank: bank}
	if src != nil {
		s.rng = rand.New(src)
	}
	return s
}

// Next never fails: the general pool is always non-empty.
func (s *Selector) Next(genres []string, progress *Progress) Question {
	pool := s.bank.Pool(genres, progress)
	return pool[s.intN(len(pool))]
}

func (s *Selector) intN(n int) int {
	if s.rng == nil {
		return rand.IntN(n)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

var defaultSelector = sync.OnceValue(func() *Selector { return NewSelector(nil, nil) })

// NextReflectionQuestion draws from the embedded bank.
func NextReflectionQuestion(genres []string, progress *Progress) Question {
	return defaultSelector().Next(genres, progress)
}
