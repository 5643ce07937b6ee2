package ledger

import (
	"sort"

	"assignment_ledger/internal/domain/entities"
)

// Calendar orders academic years and terms by start date.
type Calendar struct {
	years   map[string]int
	terms   map[string]int
	current entities.Period
}

func NewCalendar(years []entities.AcademicYear, terms []entities.Term) Calendar {
	ys := append([]entities.AcademicYear(nil), years...)
	sort.SliceStable(ys, func(i, j int) bool {
		if ys[i].StartDate.Equal(ys[j].StartDate) {
			return ys[i].ID < ys[j].ID
		}
		return ys[i].StartDate.Before(ys[j].StartDate)
	})
	ts := append([]entities.Term(nil), terms...)
	sort.SliceStable(ts, func(i, j int) bool {
		if ts[i].StartDate.Equal(ts[j].StartDate) {
			return ts[i].ID < ts[j].ID
		}
		return ts[i].StartDate.Before(ts[j].StartDate)
	})

	c := Calendar{
		years: make(map[string]int, len(ys)),
		terms: make(map[string]int, len(ts)),
	}
	for i, y := range ys {
		c.years[y.ID] = i
		if y.IsCurrent {
			c.current.AcademicYearID = y.ID
		}
	}
	for i, t := range ts {
		c.terms[t.ID] = i
		if t.IsCurrent {
			c.current.TermID = t.ID
			if c.current.AcademicYearID == "" {
				c.current.AcademicYearID = t.AcademicYearID
			}
		}
	}
	return c
}

func (c Calendar) YearPosition(id string) (int, bool) {
	p, ok := c.years[id]
	return p, ok
}

func (c Calendar) TermPosition(id string) (int, bool) {
	p, ok := c.terms[id]
	return p, ok
}

// Current is the period flagged current when the calendar was built.
func (c Calendar) Current() entities.Period {
	return c.current
}
