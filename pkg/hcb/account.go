package hcb

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/hcbtrack/hcb/pkg/coerce"
	"github.com/hcbtrack/hcb/pkg/xmlquery"
	"github.com/samber/lo"
)

// Student is a child linked to a parent account.
type Student struct {
	StudentID string `json:"studentId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// StudentFromElement builds a Student from a <Student> element.
func StudentFromElement(e *etree.Element) (Student, error) {
	r := newAttrReader("Student", e)
	return Student{
		StudentID: r.str("EntityID", ""),
		FirstName: r.str("FirstName", ""),
		LastName:  r.str("LastName", ""),
	}, nil
}

// TimeOfDay is a named schedule window such as the morning or afternoon run.
type TimeOfDay struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	BeginTime coerce.Clock `json:"beginTime"`
	EndTime   coerce.Clock `json:"endTime"`
}

// TimeOfDayFromElement builds a TimeOfDay from a <TimeOfDay> element.
func TimeOfDayFromElement(e *etree.Element) (TimeOfDay, error) {
	r := newAttrReader("TimeOfDay", e)
	t := TimeOfDay{
		ID:        r.str("ID", ""),
		Name:      r.str("Name", ""),
		BeginTime: r.clock("BeginTime", "00:00:00"),
		EndTime:   r.clock("EndTime", "00:00:00"),
	}
	if r.err != nil {
		return TimeOfDay{}, r.err
	}
	return t, nil
}

// AccountResponse is the result of a parent login.
type AccountResponse struct {
	AccountID string      `json:"accountId"`
	Students  []Student   `json:"students"`
	Times     []TimeOfDay `json:"times"`
}

// ParseAccount parses the body of a parent login response.
func ParseAccount(text string) (*AccountResponse, error) {
	doc, err := xmlquery.Parse(text)
	if err != nil {
		return nil, &SchemaError{Op: "parse account", Reason: "unreadable document", Err: err}
	}
	return AccountFromDocument(doc)
}

// AccountFromDocument assembles an AccountResponse from a parsed login
// response. The document must contain an Account element carrying an ID;
// Student and TimeOfDay elements are collected from anywhere in the document
// in document order and may be absent.
func AccountFromDocument(doc *etree.Document) (*AccountResponse, error) {
	account := xmlquery.Element(doc, "Account")
	if account == nil {
		return nil, &SchemaError{Op: "parse account", Reason: "no Account element"}
	}
	id, ok := xmlquery.LookupAttr(account, "ID")
	if !ok {
		return nil, &SchemaError{Op: "parse account", Reason: "Account element has no ID"}
	}

	resp := &AccountResponse{
		AccountID: id,
		Students:  []Student{},
		Times:     []TimeOfDay{},
	}

	for _, e := range xmlquery.Elements(doc, "Student") {
		s, err := StudentFromElement(e)
		if err != nil {
			return nil, err
		}
		resp.Students = append(resp.Students, s)
	}

	for _, e := range xmlquery.Elements(doc, "TimeOfDay") {
		t, err := TimeOfDayFromElement(e)
		if err != nil {
			return nil, err
		}
		resp.Times = append(resp.Times, t)
	}

	return resp, nil
}

// Student returns the linked student with the given id.
func (a *AccountResponse) Student(id string) (Student, bool) {
	return lo.Find(a.Students, func(s Student) bool {
		return s.StudentID == id
	})
}

// TimeOfDay returns the time of day whose ID equals key, or failing that
// whose Name equals key ignoring case.
func (a *AccountResponse) TimeOfDay(key string) (TimeOfDay, bool) {
	if t, ok := lo.Find(a.Times, func(t TimeOfDay) bool { return t.ID == key }); ok {
		return t, true
	}
	return lo.Find(a.Times, func(t TimeOfDay) bool {
		return strings.EqualFold(t.Name, key)
	})
}
