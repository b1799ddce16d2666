package mapping

// FileName is the conventional name of the mapping table.
const FileName = "territory_mapping.csv"

// Row ties a source Territory to its DeveloperName and, once known, to the
// destination record created for it.
type Row struct {
	SourceID            string `csv:"sourceId,required"      json:"sourceId"`
	DeveloperName       string `csv:"developerName,required" json:"developerName"`
	ParentDeveloperName string `csv:"parentDeveloperName"    json:"parentDeveloperName,omitempty"`
	DestinationID       string `csv:"destinationId"          json:"destinationId,omitempty"`
	ParentDestinationID string `csv:"parentDestinationId"    json:"parentDestinationId,omitempty"`
}

// Resolved reports whether the destination identifiers are filled in.
// A root row has no parent and needs only DestinationID.
func (r Row) Resolved() bool {
	if r.DestinationID == "" {
		return false
	}

	return r.ParentDeveloperName == "" || r.ParentDestinationID != ""
}

// ByDeveloperName indexes rows by DeveloperName. The first row wins on duplicates.
func ByDeveloperName(rows []Row) map[string]Row {
	out := make(map[string]Row, len(rows))

	for _, r := range rows {
		if _, ok := out[r.DeveloperName]; !ok {
			out[r.DeveloperName] = r
		}
	}

	return out
}
