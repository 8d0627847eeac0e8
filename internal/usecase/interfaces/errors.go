package interfaces

import "errors"

// ErrConflict is returned by repositories when a create hits a uniqueness constraint
// (session_id for questionnaires, questionnaire_id for estimates).
var ErrConflict = errors.New("record already exists")
