package seed

type companyDef struct {
	name     string
	website  string
	industry string
}

type contactDef struct {
	firstName string
	lastName  string
	email     string
	phone     string
	company   string
}

type activityDef struct {
	contact string
	kind    string
	subject string
	notes   string
}

type dealDef struct {
	company   string
	title     string
	value     float64
	stage     string
	closeDate string
}

var demoCompanies = []companyDef{
	{name: "Acme Corporation", website: "https://acme.example.com", industry: "Manufacturing"},
	{name: "Globex", website: "https://globex.example.com", industry: "Energy"},
	{name: "Initech", website: "https://initech.example.com", industry: "Software"},
}

var demoContacts = []contactDef{
	{firstName: "Wile", lastName: "Coyote", email: "wile@acme.example.com", phone: "555-0101", company: "Acme Corporation"},
	{firstName: "Hank", lastName: "Scorpio", email: "hank@globex.example.com", phone: "555-0102", company: "Globex"},
	{firstName: "Peter", lastName: "Gibbons", email: "peter@initech.example.com", phone: "555-0103", company: "Initech"},
	{firstName: "Samir", lastName: "Nagheenanajar", email: "samir@initech.example.com", phone: "555-0104", company: "Initech"},
}

var demoActivities = []activityDef{
	{contact: "wile@acme.example.com", kind: "call", subject: "Discovery call", notes: "Needs a faster rocket sled."},
	{contact: "wile@acme.example.com", kind: "email", subject: "Sent catalogue", notes: "Followed up with spring pricing."},
	{contact: "hank@globex.example.com", kind: "meeting", subject: "Site visit", notes: "Toured the Cypress Creek campus."},
	{contact: "peter@initech.example.com", kind: "note", subject: "TPS reports", notes: "Wants fewer cover sheets."},
}

var demoDeals = []dealDef{
	{company: "Acme Corporation", title: "Rocket sled fleet", value: 48000, stage: "proposal", closeDate: "2026-12-15"},
	{company: "Globex", title: "Campus energy contract", value: 125000, stage: "negotiation", closeDate: "2027-01-31"},
	{company: "Initech", title: "Printer replacement", value: 9500, stage: "closed-won", closeDate: "2026-09-30"},
	{company: "Initech", title: "Stapler upgrade", value: 1200, stage: "closed-lost", closeDate: "2026-08-01"},
}
