package input

// Field order matters: the first failing field decides the reported error,
// matching the order in which the shell prompts for them.

// AddClassroomRequest is the input of the Add Classroom option.
type AddClassroomRequest struct {
	ClassroomName string `validate:"classroom_name"`
}

// DeleteClassroomRequest is the input of the Delete Classroom option.
type DeleteClassroomRequest struct {
	ClassroomName string `validate:"classroom_name"`
}

// EnrollStudentRequest is the input of the Add Student option.
type EnrollStudentRequest struct {
	StudentID     string `validate:"student_id"`
	StudentName   string `validate:"notblank"`
	ClassroomName string `validate:"notblank"`
}

// ScheduleAssignmentRequest is the input of the Schedule Assignment option.
type ScheduleAssignmentRequest struct {
	ClassroomName string `validate:"notblank"`
	Details       string `validate:"notblank"`
}

// ListStudentsRequest is the input of the List Students option.
type ListStudentsRequest struct {
	ClassroomName string `validate:"notblank"`
}

// RemoveStudentRequest is the input of the Remove Student option.
type RemoveStudentRequest struct {
	StudentID     string `validate:"student_id"`
	ClassroomName string `validate:"notblank"`
}

// SubmitAssignmentRequest is the input of the Submit Assignment option.
type SubmitAssignmentRequest struct {
	StudentID     string `validate:"student_id"`
	ClassroomName string `validate:"notblank"`
	Details       string `validate:"notblank"`
}
