package alfacrm

// Record is one CRM entity as returned by the API. The upstream responses are
// free-form JSON objects; field sets vary per branch configuration, so records
// are not mapped onto static structs.
type Record = map[string]interface{}

// Params is raw caller input for a list filter, create, or update call.
type Params = map[string]interface{}

// Page is a single index response: the items of one page plus the server's
// reported total across all pages.
type Page struct {
	Items []Record `json:"items"`
	Total int      `json:"total"`
}

// ListResult is the aggregate of an auto-paginated list call. Total always
// equals len(Items): the client reports the count it actually fetched, not the
// server's originally advertised figure, so the two can never disagree.
type ListResult struct {
	Items []Record `json:"items"`
	Total int      `json:"total"`
}
