package models

// StructuredQuery is the keyword expansion of a topic.
// Field names follow the Scweet actor input contract (words_and / words_or / hashtag),
// which is also the JSON schema the LLM is instructed to emit.
type StructuredQuery struct {
	WordsAnd []string `bson:"words_and" json:"words_and"`
	WordsOr  []string `bson:"words_or" json:"words_or"`
	Hashtags []string `bson:"hashtag" json:"hashtag"`
}

// FallbackQuery returns the query used when LLM expansion produced
// unusable output: the raw topic as the single required term.
func FallbackQuery(topic string) StructuredQuery {
	return StructuredQuery{
		WordsAnd: []string{topic},
		WordsOr:  []string{},
		Hashtags: []string{},
	}
}

// Normalize coerces nil slices to empty slices so the three fields are
// always present as arrays in serialized output.
func (q *StructuredQuery) Normalize() {
	if q.WordsAnd == nil {
		q.WordsAnd = []string{}
	}
	if q.WordsOr == nil {
		q.WordsOr = []string{}
	}
	if q.Hashtags == nil {
		q.Hashtags = []string{}
	}
}
