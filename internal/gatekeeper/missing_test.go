package gatekeeper

import (
	"reflect"
	"testing"
)

func fullInput() Input {
	return Input{
		RequestType:             RequestOpportunity,
		ProjectType:             ProjectOffline,
		Idea:                    "Химчистка",
		Goal:                    "Выйти на прибыль за 3 месяца",
		Context:                 "Рост спроса в районе",
		Region:                  Region{Country: "Россия", Region: "Крым", City: "Ялта"},
		Capital:                 "150000",
		ResponsibilityConfirmed: true,
	}
}

func TestCollectMissingFieldsComplete(t *testing.T) {
	if missing := CollectMissingFields(NormalizeInput(fullInput())); len(missing) != 0 {
		t.Fatalf("expected no missing fields, got %v", missing)
	}
}

func TestCollectMissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Input)
		want   []string
	}{
		{
			"context required for opportunity",
			func(in *Input) { in.Context = "" },
			[]string{FieldContext},
		},
		{
			"problem required for problem solving",
			func(in *Input) {
				in.RequestType = RequestProblemSolving
				in.Problem = "коротко" // under the 10-char floor
			},
			[]string{FieldProblem},
		},
		{
			"short idea",
			func(in *Input) { in.Idea = "ab" },
			[]string{FieldIdea},
		},
		{
			"short goal",
			func(in *Input) { in.Goal = "x" },
			[]string{FieldGoal},
		},
		{
			"city optional for online",
			func(in *Input) {
				in.ProjectType = ProjectOnline
				in.Region.City = ""
			},
			nil,
		},
		{
			"city required for production even online",
			func(in *Input) {
				in.ProjectType = ProjectOnline
				in.ProductionRelated = true
				in.Region.City = ""
			},
			[]string{FieldRegionCity},
		},
		{
			"capital optional without production",
			func(in *Input) { in.Capital = nil },
			nil,
		},
		{
			"capital required for production",
			func(in *Input) {
				in.ProductionRelated = true
				in.Capital = "  "
			},
			[]string{FieldCapital},
		},
		{
			"responsibility reported",
			func(in *Input) { in.ResponsibilityConfirmed = false },
			[]string{FieldResponsibility},
		},
		{
			"unknown enums",
			func(in *Input) {
				in.RequestType = "SOMETHING"
				in.ProjectType = "ELSE"
			},
			[]string{FieldRequestType, FieldProjectType},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := fullInput()
			tc.mutate(&in)
			got := CollectMissingFields(NormalizeInput(in))
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("expected %v got %v", tc.want, got)
			}
		})
	}
}

func TestCollectMissingFieldsOrder(t *testing.T) {
	in := Input{ProductionRelated: true}
	got := CollectMissingFields(NormalizeInput(in))
	want := []string{
		FieldRequestType, FieldProjectType, FieldIdea, FieldGoal,
		FieldRegionCountry, FieldRegionRegion, FieldRegionCity,
		FieldCapital, FieldResponsibility,
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v got %v", want, got)
	}
}
