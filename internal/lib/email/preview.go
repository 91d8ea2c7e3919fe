package email

// PreviewData is sample data for rendering each template locally
// (see `lightbnb email-preview`).
var PreviewData = map[Template]map[string]string{
	TemplateWelcome: {
		"UserName": "Devin Sanders",
	},
	TemplatePropertyListed: {
		"OwnerName":    "Devin Sanders",
		"Title":        "Speed lamp",
		"City":         "Vancouver",
		"CostPerNight": "$93.00",
	},
}
