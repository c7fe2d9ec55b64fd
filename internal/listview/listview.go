// Package listview derives the ordered subset of recipes to display from the
// full collection and the active filter and sort parameters. Apply is a pure
// function: same inputs, same output, no hidden state.
package listview

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/shirleys-kitchen/backend/internal/model"
)

// OwnerAll matches every contributor in Params.Owner.
const OwnerAll = "All"

// Params holds the filter predicates. A recipe passes only if every active
// predicate passes; zero values deactivate their predicate.
type Params struct {
	// Category, when non-empty, must equal the recipe's category exactly.
	Category model.Category
	// Search is a case-insensitive substring matched against title, any
	// ingredient, and the description.
	Search string
	// MinRating is the inclusive rating floor; a missing rating counts as 0.
	MinRating int
	// MaxMinutes is the inclusive cook-time ceiling in minutes. Zero or
	// negative means no limit. Recipes whose cook time cannot be parsed
	// never satisfy a finite ceiling.
	MaxMinutes float64
	// Owner, when set and not OwnerAll, must equal the recipe's addedBy.
	Owner string
	// Exclude lists ingredient terms; a recipe containing any of them in
	// any ingredient (case-insensitive substring) is filtered out.
	Exclude []string
}

// SortKey selects the ordering attribute.
type SortKey string

const (
	SortTitle  SortKey = "title"
	SortDate   SortKey = "date"
	SortTime   SortKey = "time"
	SortRating SortKey = "rating"
)

// Sort pairs a key with a direction.
type Sort struct {
	Key        SortKey
	Descending bool
}

// DefaultSort is the initial ordering: title ascending.
var DefaultSort = Sort{Key: SortTitle}

// Toggle returns the sort state after the user picks key: selecting the
// active key flips the direction, selecting a new key resets to ascending.
func (s Sort) Toggle(key SortKey) Sort {
	if s.Key == key {
		return Sort{Key: key, Descending: !s.Descending}
	}
	return Sort{Key: key}
}

var firstNumber = regexp.MustCompile(`[0-9]+(?:\.[0-9]+)?`)

// ParseMinutes extracts a duration in minutes from free text such as
// "45 mins" or "1.5 hours". The first numeric value in the string is taken;
// if the text mentions hours it is scaled by 60. Absent or unparseable
// input yields +Inf, which fails every finite cook-time ceiling and sorts
// after all finite durations in ascending order.
func ParseMinutes(timeStr string) float64 {
	if timeStr == "" {
		return math.Inf(1)
	}
	lower := strings.ToLower(timeStr)
	match := firstNumber.FindString(lower)
	if match == "" {
		return math.Inf(1)
	}
	num, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return math.Inf(1)
	}
	if strings.Contains(lower, "hour") || strings.Contains(lower, "hr") {
		return num * 60
	}
	return num
}

// Apply filters the collection through every active predicate and stable
// sorts the result. The input slice is not modified.
func Apply(recipes []model.Recipe, p Params, s Sort) []model.Recipe {
	out := make([]model.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if matches(r, p) {
			out = append(out, r)
		}
	}
	sortRecipes(out, s)
	return out
}

func matches(r model.Recipe, p Params) bool {
	if p.Category != "" && r.Category != p.Category {
		return false
	}

	if term := strings.ToLower(strings.TrimSpace(p.Search)); term != "" {
		if !matchesText(r, term) {
			return false
		}
	}

	if r.Rating < p.MinRating {
		return false
	}

	if p.MaxMinutes > 0 && ParseMinutes(r.CookTime) > p.MaxMinutes {
		return false
	}

	if p.Owner != "" && p.Owner != OwnerAll && r.AddedBy != p.Owner {
		return false
	}

	for _, ex := range p.Exclude {
		ex = strings.ToLower(strings.TrimSpace(ex))
		if ex == "" {
			continue
		}
		for _, ing := range r.Ingredients {
			if strings.Contains(strings.ToLower(ing), ex) {
				return false
			}
		}
	}

	return true
}

func matchesText(r model.Recipe, lowerTerm string) bool {
	if strings.Contains(strings.ToLower(r.Title), lowerTerm) {
		return true
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing), lowerTerm) {
			return true
		}
	}
	return r.Description != "" &&
		strings.Contains(strings.ToLower(r.Description), lowerTerm)
}

func sortRecipes(recipes []model.Recipe, s Sort) {
	var less func(a, b model.Recipe) bool
	switch s.Key {
	case SortDate:
		less = func(a, b model.Recipe) bool { return a.Timestamp < b.Timestamp }
	case SortTime:
		less = func(a, b model.Recipe) bool {
			return ParseMinutes(a.CookTime) < ParseMinutes(b.CookTime)
		}
	case SortRating:
		less = func(a, b model.Recipe) bool { return a.Rating < b.Rating }
	default:
		// Title ordering is locale-aware so accented names file naturally.
		c := collate.New(language.English)
		less = func(a, b model.Recipe) bool {
			return c.CompareString(a.Title, b.Title) < 0
		}
	}

	if s.Descending {
		asc := less
		less = func(a, b model.Recipe) bool { return asc(b, a) }
	}

	sort.SliceStable(recipes, func(i, j int) bool {
		return less(recipes[i], recipes[j])
	})
}
