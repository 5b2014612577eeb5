package gatekeeper

// CollectMissingFields returns the ordered, de-duplicated list of fields
// that are absent or structurally invalid under the currently selected
// request and project type. Every check runs independently; nothing
// short-circuits here. The input is expected to be normalized already.
func CollectMissingFields(in Input) []string {
	var missing []string

	if in.RequestType == "" {
		missing = append(missing, FieldRequestType)
	}
	if in.ProjectType == "" {
		missing = append(missing, FieldProjectType)
	}
	if len([]rune(in.Idea)) < 3 {
		missing = append(missing, FieldIdea)
	}
	if len([]rune(in.Goal)) < 5 {
		missing = append(missing, FieldGoal)
	}

	switch in.RequestType {
	case RequestOpportunity:
		if len([]rune(in.Context)) < 5 {
			missing = append(missing, FieldContext)
		}
	case RequestProblemSolving:
		if len([]rune(in.Problem)) < 10 {
			missing = append(missing, FieldProblem)
		}
	}

	if in.Region.Country == "" {
		missing = append(missing, FieldRegionCountry)
	}
	if in.Region.Region == "" {
		missing = append(missing, FieldRegionRegion)
	}
	if cityRequired(in) && in.Region.City == "" {
		missing = append(missing, FieldRegionCity)
	}

	if in.ProductionRelated && !hasCapital(in.Capital) {
		missing = append(missing, FieldCapital)
	}

	if !in.ResponsibilityConfirmed {
		missing = append(missing, FieldResponsibility)
	}

	return missing
}

// cityRequired: physical presence implies a concrete city, and so does any
// production-related project regardless of project type.
func cityRequired(in Input) bool {
	return in.ProjectType == ProjectOffline || in.ProductionRelated
}
