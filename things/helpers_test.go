package things

type post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Score     int64     `json:"score"`
	Created   Timestamp `json:"created_utc"`
	Edited    Edited    `json:"edited"`
	Flair     *string   `json:"link_flair_text"`
	NumReport *uint64   `json:"num_reports"`
}

func (p *post) UnmarshalJSON(b []byte) error {
	return DecodeRecord(b, p)
}

const postA = `{"id":"a","title":"first","score":1,"created_utc":1609459200.0,"edited":false}`
const postB = `{"id":"b","title":"second","score":2,"created_utc":1609459201,"edited":1609459300}`
const postC = `{"id":"c","title":"third","score":-3,"created_utc":1609459202,"edited":false,"link_flair_text":""}`
