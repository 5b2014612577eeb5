package i18n

var en = map[string]string{
	"gatekeeper.clarification.request_type": "Select the request type: opportunity evaluation or problem solving.",
	"gatekeeper.clarification.project_type": "Select the project type: offline (physical) or online (digital / remote).",
	"gatekeeper.clarification.idea":         "Clarify the idea: what exactly are we launching / validating?",
	"gatekeeper.clarification.goal":         "Make the goal more specific: what counts as success and by when.",
	"gatekeeper.clarification.context":      "Add context: why now, what is the rationale (demand/seasonality/resources/location).",
	"gatekeeper.clarification.problem":      "Describe the problem concretely: what fails, where the loss is, 1-2 examples.",
	"gatekeeper.clarification.region.country": "Specify the country (required).",
	"gatekeeper.clarification.region.region":  "Specify the region/state (required).",
	"gatekeeper.clarification.region.city":    "Specify the city (required for offline and production projects).",
	"gatekeeper.clarification.capital":        "Provide capital as a number or range (e.g. 100000 / up to 200000 / 100k).",
	"gatekeeper.clarification.time_horizon":   "Provide a time horizon (e.g. 2 weeks / 1 month / 6 months).",
	"gatekeeper.clarification.responsibility": "Confirm responsibility via checkbox - analysis is blocked without it.",
	"gatekeeper.clarification.legality":       "Rephrase the case: it must be legal. Remove any hint of bypassing the law.",
	"gatekeeper.clarification.reality":        "Drop unrealistic expectations: the goal must be achievable within time and resources.",
	"gatekeeper.clarification.generic":        "Clarify the highlighted field.",

	"gatekeeper.reason_codes.RC-01": "Missing or invalid input data",
	"gatekeeper.reason_codes.RC-02": "Goal is undefined or not measurable",
	"gatekeeper.reason_codes.RC-03": "Responsibility not confirmed",
	"gatekeeper.reason_codes.RC-04": "Contradicts reality constraints",
	"gatekeeper.reason_codes.RC-05": "Legality issue",
	"gatekeeper.reason_codes.RC-06": "Region is missing or invalid",
	"gatekeeper.reason_codes.RC-07": "Capital is missing or unparsable",
	"gatekeeper.reason_codes.RC-08": "Time horizon is invalid",
	"gatekeeper.reason_codes.RC-09": "Capital below production threshold",

	"gatekeeper.status.dirty":    "Data changed - re-check required.",
	"gatekeeper.status.admitted": "Data is ready (ADMITTED).",
}
