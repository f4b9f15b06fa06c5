package matching

// stopWords are filler words ignored during keyword extraction.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "and": {}, "or": {}, "but": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {},
	"from": {}, "is": {}, "are": {}, "was": {}, "were": {}, "be": {},
	"been": {}, "being": {}, "have": {}, "has": {}, "had": {}, "do": {},
	"does": {}, "did": {}, "will": {}, "would": {}, "could": {},
	"should": {}, "may": {}, "might": {}, "shall": {}, "can": {},
	"need": {}, "must": {}, "that": {}, "which": {}, "who": {}, "whom": {},
	"this": {}, "these": {}, "those": {}, "it": {}, "its": {}, "we": {},
	"you": {}, "your": {}, "our": {}, "they": {}, "them": {}, "their": {},
	"he": {}, "she": {}, "as": {}, "if": {}, "not": {}, "no": {}, "so": {},
	"up": {}, "out": {}, "about": {}, "into": {}, "over": {}, "after": {},
	"before": {}, "between": {}, "under": {}, "above": {}, "such": {},
	"each": {}, "all": {}, "any": {}, "both": {}, "few": {}, "more": {},
	"most": {}, "other": {}, "some": {}, "only": {}, "same": {},
	"than": {}, "too": {}, "very": {}, "just": {}, "also": {}, "well": {},
	"etc": {}, "e.g": {}, "i.e": {}, "able": {}, "work": {},
	"working": {}, "including": {}, "experience": {}, "using": {},
	"used": {}, "use": {}, "new": {}, "within": {}, "across": {},
	"strong": {}, "excellent": {}, "good": {}, "great": {}, "best": {},
	"high": {}, "highly": {}, "minimum": {}, "preferred": {},
	"required": {}, "requirements": {}, "looking": {}, "join": {},
	"team": {}, "role": {}, "position": {}, "company": {}, "years": {},
	"year": {},
}

// compoundTerms are multi-word technical phrases treated as a single
// vocabulary unit. Matching is longest-first so "machine learning" is
// never split into "machine" and "learning".
var compoundTerms = []string{
	"natural language processing",
	"amazon web services",
	"continuous integration",
	"continuous delivery",
	"continuous deployment",
	"machine learning",
	"deep learning",
	"computer vision",
	"data science",
	"data engineering",
	"data analysis",
	"project management",
	"product management",
	"software engineering",
	"full stack",
	"front end",
	"back end",
	"cloud computing",
	"version control",
	"unit testing",
	"rest api",
	"restful api",
	"web services",
	"agile methodology",
	"scrum master",
	"design patterns",
	"object oriented",
	"test driven",
	"google cloud",
	"microsoft azure",
	"ci cd",
}
