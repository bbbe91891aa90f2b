package textclass

// stopWords is the built-in English stop-word set applied to non-numeric
// tokens.  Tokens whose lower-cased form appears here are ignored silently;
// they are ordinary language, not failed code attempts.
var stopWords = map[string]bool{
	"a": true, "about": true, "above": true, "after": true, "again": true,
	"against": true, "all": true, "also": true, "am": true, "an": true,
	"and": true, "any": true, "are": true, "as": true, "at": true,
	"be": true, "because": true, "been": true, "before": true, "being": true,
	"below": true, "between": true, "both": true, "but": true, "by": true,
	"can": true, "cannot": true, "could": true,
	"did": true, "do": true, "does": true, "doing": true, "down": true,
	"during": true,
	"each": true, "either": true, "else": true, "every": true,
	"few": true, "for": true, "from": true, "further": true,
	"had": true, "has": true, "have": true, "having": true, "he": true,
	"her": true, "here": true, "hers": true, "herself": true, "him": true,
	"himself": true, "his": true, "how": true,
	"i": true, "if": true, "in": true, "into": true, "is": true, "it": true,
	"its": true, "itself": true,
	"just": true,
	"let": true,
	"may": true, "me": true, "might": true, "more": true, "most": true,
	"must": true, "my": true, "myself": true,
	"no": true, "nor": true, "not": true, "now": true,
	"of": true, "off": true, "on": true, "once": true, "only": true,
	"or": true, "other": true, "ought": true, "our": true, "ours": true,
	"ourselves": true, "out": true, "over": true, "own": true,
	"please": true,
	"same": true, "shall": true, "she": true, "should": true, "so": true,
	"some": true, "such": true,
	"than": true, "that": true, "the": true, "their": true, "theirs": true,
	"them": true, "themselves": true, "then": true, "there": true,
	"these": true, "they": true, "this": true, "those": true, "through": true,
	"to": true, "too": true,
	"under": true, "until": true, "up": true,
	"very": true,
	"was": true, "we": true, "were": true, "what": true, "when": true,
	"where": true, "which": true, "while": true, "who": true, "whom": true,
	"why": true, "will": true, "with": true, "would": true,
	"you": true, "your": true, "yours": true, "yourself": true,
	"yourselves": true,
}

// commonIntentWords are domain/intent words that routinely surround a code in
// a lookup request ("check 1101", "show valid codes").  They are ignored like
// stop-words so that conversational phrasing does not pollute the reject set.
var commonIntentWords = map[string]bool{
	"check": true, "tell": true, "about": true, "show": true, "list": true,
	"find": true, "give": true, "valid": true, "invalid": true, "code": true,
	"codes": true, "describe": true, "me": true, "is": true, "are": true,
	"hsn": true, "lookup": true, "verify": true,
}
