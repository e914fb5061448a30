package domain

import (
	"strings"
	"testing"
)

func TestStatus_Column(t *testing.T) {
	tests := []struct {
		status Status
		want   int
	}{
		{StatusTodo, 0},
		{StatusInProgress, 1},
		{StatusCompleted, 2},
		{Status("unknown"), 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.Column(); got != tt.want {
				t.Errorf("Status.Column() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    Status
		wantErr bool
	}{
		{"TODO", StatusTodo, false},
		{"todo", StatusTodo, false},
		{"in-progress", StatusInProgress, false},
		{"IN_PROGRESS", StatusInProgress, false},
		{"done", StatusCompleted, false},
		{" completed ", StatusCompleted, false},
		{"blocked", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStatus(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStatus(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseStatus(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDraft_Validate(t *testing.T) {
	validDesc := "A description long enough"

	tests := []struct {
		name       string
		draft      Draft
		wantFields []string
	}{
		{
			name:  "valid without status",
			draft: Draft{Title: "Write docs", Description: validDesc},
		},
		{
			name:  "valid with status",
			draft: Draft{Title: "Write docs", Description: validDesc, Status: StatusCompleted},
		},
		{
			name:       "empty title",
			draft:      Draft{Title: "   ", Description: validDesc},
			wantFields: []string{"title"},
		},
		{
			name:       "short title",
			draft:      Draft{Title: "ab", Description: validDesc},
			wantFields: []string{"title"},
		},
		{
			name:       "long title",
			draft:      Draft{Title: strings.Repeat("x", TitleMaxLen+1), Description: validDesc},
			wantFields: []string{"title"},
		},
		{
			name:  "title at max counts runes",
			draft: Draft{Title: strings.Repeat("é", TitleMaxLen), Description: validDesc},
		},
		{
			name:       "short description",
			draft:      Draft{Title: "Write docs", Description: "too short"},
			wantFields: []string{"description"},
		},
		{
			name:       "long description",
			draft:      Draft{Title: "Write docs", Description: strings.Repeat("d", DescriptionMaxLen+1)},
			wantFields: []string{"description"},
		},
		{
			name:       "bad status and missing everything",
			draft:      Draft{Status: "BLOCKED"},
			wantFields: []string{"title", "description", "status"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.draft.Validate()
			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			vErr, ok := err.(ValidationErrors)
			if !ok {
				t.Fatalf("Validate() = %T, want ValidationErrors", err)
			}
			if len(vErr) != len(tt.wantFields) {
				t.Errorf("Validate() fields = %v, want %v", vErr, tt.wantFields)
			}
			for _, f := range tt.wantFields {
				if vErr.Field(f) == "" {
					t.Errorf("Validate() missing error for %q", f)
				}
			}
		})
	}
}

func TestDraft_Normalize(t *testing.T) {
	d := Draft{Title: "  Ship it  ", Description: " details here "}.Normalize()

	if d.Title != "Ship it" {
		t.Errorf("Title = %q", d.Title)
	}
	if d.Description != "details here" {
		t.Errorf("Description = %q", d.Description)
	}
	if d.Status != StatusTodo {
		t.Errorf("Status = %q, want default TODO", d.Status)
	}

	kept := Draft{Title: "x", Status: StatusInProgress}.Normalize()
	if kept.Status != StatusInProgress {
		t.Errorf("Normalize() overwrote explicit status: %q", kept.Status)
	}
}

func TestIndexOf(t *testing.T) {
	tasks := []Task{{ID: "1"}, {ID: "2"}, {ID: "3"}}

	if got := IndexOf(tasks, "2"); got != 1 {
		t.Errorf("IndexOf(2) = %d, want 1", got)
	}
	if got := IndexOf(tasks, "9"); got != -1 {
		t.Errorf("IndexOf(9) = %d, want -1", got)
	}
	if _, ok := FindTask(tasks, "3"); !ok {
		t.Error("FindTask(3) not found")
	}
}
