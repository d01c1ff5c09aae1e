package mail

type AssignmentEmailData struct {
	Name       string
	RecordName string
	Kind       string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}
