package domain

import (
	"reflect"
	"testing"
)

func fixtureTasks() []Task {
	return []Task{
		{ID: "1", Title: "Implement authentication", Status: StatusCompleted},
		{ID: "2", Title: "Design dashboard", Status: StatusInProgress},
		{ID: "3", Title: "Configure store", Status: StatusCompleted},
		{ID: "4", Title: "Unit tests", Status: StatusTodo},
		{ID: "5", Title: "Form validation", Status: StatusTodo},
	}
}

func ids(tasks []Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func TestNewFilter(t *testing.T) {
	f := NewFilter()
	if f.IsActive() {
		t.Error("NewFilter() should create inactive filter")
	}
	if got := f.Apply(fixtureTasks()); len(got) != 5 {
		t.Errorf("inactive filter returned %d tasks, want 5", len(got))
	}
}

func TestFilter_Apply(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{
			name:   "all statuses, empty search",
			filter: Filter{Status: StatusAll},
			want:   []string{"1", "2", "3", "4", "5"},
		},
		{
			name:   "zero-value status behaves as all",
			filter: Filter{},
			want:   []string{"1", "2", "3", "4", "5"},
		},
		{
			name:   "completed only",
			filter: Filter{Status: StatusFilter(StatusCompleted)},
			want:   []string{"1", "3"},
		},
		{
			name:   "case-insensitive search",
			filter: Filter{Status: StatusAll, Search: "DESIGN"},
			want:   []string{"2"},
		},
		{
			name:   "status and search combine with AND",
			filter: Filter{Status: StatusFilter(StatusTodo), Search: "test"},
			want:   []string{"4"},
		},
		{
			name:   "search does not match description or id",
			filter: Filter{Status: StatusAll, Search: "1"},
			want:   []string{},
		},
		{
			name:   "no match",
			filter: Filter{Status: StatusFilter(StatusInProgress), Search: "form"},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(tt.filter.Apply(fixtureTasks()))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Apply() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilter_ScenarioCompleted(t *testing.T) {
	tasks := []Task{
		{ID: "1", Status: StatusTodo},
		{ID: "2", Status: StatusCompleted},
	}
	got := Filter{Status: StatusFilter(StatusCompleted), Search: ""}.Apply(tasks)

	if len(got) != 1 || got[0].ID != "2" {
		t.Errorf("Apply() = %v, want only task 2", got)
	}
}

func TestFilter_Idempotent(t *testing.T) {
	tasks := fixtureTasks()
	before := append([]Task(nil), tasks...)
	f := Filter{Status: StatusFilter(StatusCompleted), Search: "i"}

	first := f.Apply(tasks)
	second := f.Apply(tasks)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Apply() not idempotent: %v vs %v", first, second)
	}
	if !reflect.DeepEqual(tasks, before) {
		t.Error("Apply() mutated its input")
	}
}

func TestStatusFilter_Next(t *testing.T) {
	f := StatusAll
	var seen []StatusFilter
	for i := 0; i < 4; i++ {
		f = f.Next()
		seen = append(seen, f)
	}
	want := []StatusFilter{"TODO", "IN_PROGRESS", "COMPLETED", "ALL"}
	if !reflect.DeepEqual(seen, want) {
		t.Errorf("cycle = %v, want %v", seen, want)
	}

	if got := StatusFilter("bogus").Next(); got != StatusAll {
		t.Errorf("unknown.Next() = %v, want ALL", got)
	}
}

func TestParseStatusFilter(t *testing.T) {
	if f, err := ParseStatusFilter("all"); err != nil || f != StatusAll {
		t.Errorf("ParseStatusFilter(all) = %v, %v", f, err)
	}
	if f, err := ParseStatusFilter(""); err != nil || f != StatusAll {
		t.Errorf("ParseStatusFilter(\"\") = %v, %v", f, err)
	}
	if f, err := ParseStatusFilter("done"); err != nil || f != StatusFilter(StatusCompleted) {
		t.Errorf("ParseStatusFilter(done) = %v, %v", f, err)
	}
	if _, err := ParseStatusFilter("nope"); err == nil {
		t.Error("ParseStatusFilter(nope) should fail")
	}
}

func TestByStatus(t *testing.T) {
	cols := ByStatus(fixtureTasks())

	if got := ids(cols[StatusTodo]); !reflect.DeepEqual(got, []string{"4", "5"}) {
		t.Errorf("todo column = %v", got)
	}
	if got := ids(cols[StatusCompleted]); !reflect.DeepEqual(got, []string{"1", "3"}) {
		t.Errorf("completed column = %v", got)
	}

	empty := ByStatus(nil)
	for _, s := range Statuses {
		if empty[s] == nil {
			t.Errorf("column %s should be an empty slice, not nil", s)
		}
	}
}
