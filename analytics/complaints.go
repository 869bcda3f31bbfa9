package analytics

type Complaint struct {
	GroupName    string `json:"grupo"`
	ActivityDate string `json:"data"`
	Text         string `json:"reclamacao"`
	Sentiment    string `json:"sentimento"`
}

// ExtractComplaints lists every record with a real complaint, most recent first.
// Repeated complaints are kept; each one is a separate event.
func ExtractComplaints(records []NormalizedRecord) []Complaint {
	complaints := make([]Complaint, 0)
	for _, r := range SortByDateDesc(records) {
		if !r.HasComplaint {
			continue
		}
		complaints = append(complaints, Complaint{
			GroupName:    r.GroupName,
			ActivityDate: r.ActivityDate,
			Text:         r.ComplaintText,
			Sentiment:    r.DisplaySentiment(),
		})
	}
	return complaints
}
