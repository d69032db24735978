package models

type Message struct {
	ID             int64   `json:"id" db:"id"`
	MemberID       int64   `json:"member_id" db:"member_id"`
	Content        string  `json:"content" db:"content"`
	CloudfrontLink *string `json:"cloudfront_link,omitempty" db:"cloudfront_link"`
}

// BoardMessage is one row of the board view: a message joined with its author.
type BoardMessage struct {
	ID             int64   `json:"id" example:"7"`
	MemberID       int64   `json:"member_id" example:"3"`
	AuthorName     string  `json:"author_name" example:"Ann"`
	Content        string  `json:"content" example:"hello"`
	CloudfrontLink *string `json:"cloudfront_link,omitempty" example:"https://d111abc.cloudfront.net/3_1717171717000000_cat.png"`
}
