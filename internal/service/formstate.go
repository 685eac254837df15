package service

// FormState is the explicit state of an admin manager page: Browsing (list
// only), Creating (blank form open) or Editing (form loaded with an existing
// record). One form at most is open at a time; delete is only offered while
// browsing.
type FormState struct {
	mode   formMode
	editID string
}

type formMode int

const (
	modeBrowsing formMode = iota
	modeCreating
	modeEditing
)

// Browsing is the initial state: list view, no form open.
func Browsing() FormState { return FormState{mode: modeBrowsing} }

// Creating opens a blank form.
func Creating() FormState { return FormState{mode: modeCreating} }

// Editing opens the form for an existing record. An empty id degrades to
// Browsing rather than producing an ambiguous edit state.
func Editing(id string) FormState {
	if id == "" {
		return Browsing()
	}
	return FormState{mode: modeEditing, editID: id}
}

// FormStateFromRequest derives the state from the manager's query
// parameters. Editing an existing record wins over opening a second, blank
// form: only one form may be active.
func FormStateFromRequest(editID string, wantNew bool) FormState {
	if editID != "" {
		return Editing(editID)
	}
	if wantNew {
		return Creating()
	}
	return Browsing()
}

func (s FormState) IsBrowsing() bool { return s.mode == modeBrowsing }
func (s FormState) IsCreating() bool { return s.mode == modeCreating }
func (s FormState) IsEditing() bool  { return s.mode == modeEditing }

// FormOpen reports whether any form (create or edit) is active.
func (s FormState) FormOpen() bool { return s.mode != modeBrowsing }

// EditID returns the id being edited, empty unless IsEditing.
func (s FormState) EditID() string { return s.editID }

// CanDelete reports whether a delete may proceed. Deleting is blocked while
// a form is open.
func (s FormState) CanDelete() bool { return s.IsBrowsing() }
