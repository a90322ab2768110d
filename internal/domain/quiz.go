package domain

// quizQuestions is the fixed awareness quiz served by the API. Presentation
// only: the UI handles answer checking and achievement toasts client-side.
var quizQuestions = []QuizQuestion{
	{
		ID:     1,
		Prompt: "An email from \"support@paypa1.com\" asks you to verify your account. What gives it away?",
		Options: []string{
			"The polite tone",
			"The digit 1 imitating the letter l in the domain",
			"Asking about an account you own",
			"Nothing, it is legitimate",
		},
		Answer:      1,
		Explanation: "Lookalike domains swap characters (paypa1 vs paypal) to pass a quick glance. Always read the sender domain character by character.",
	},
	{
		ID:     2,
		Prompt: "A link reads https://secure-login.mybank.com.verify-account.tk/login. Which domain will you actually visit?",
		Options: []string{
			"mybank.com",
			"secure-login.mybank.com",
			"verify-account.tk",
			"login.tk",
		},
		Answer:      2,
		Explanation: "Only the right-most registered domain counts. Everything before it is a subdomain the attacker controls.",
	},
	{
		ID:     3,
		Prompt: "Which attachment is most dangerous to open?",
		Options: []string{
			"report.pdf",
			"photo.jpg",
			"invoice.pdf.exe",
			"notes.txt",
		},
		Answer:      2,
		Explanation: "A double extension hides an executable behind a document name. Windows hides known extensions by default, so the victim sees invoice.pdf.",
	},
	{
		ID:     4,
		Prompt: "A message says: \"URGENT: your account will be suspended within 24 hours unless you confirm your password.\" What should you do?",
		Options: []string{
			"Confirm quickly to avoid suspension",
			"Reply asking for more time",
			"Click the link but use an old password",
			"Contact the service through its official site or app",
		},
		Answer:      3,
		Explanation: "Deadline pressure plus a credential request is the classic phishing combination. Legitimate services never ask for your password by email.",
	},
	{
		ID:     5,
		Prompt: "Why do attackers use link shorteners like bit.ly in phishing messages?",
		Options: []string{
			"To save space in the message",
			"To hide the real destination of the link",
			"Shortened links load faster",
			"Mail servers require them",
		},
		Answer:      1,
		Explanation: "A shortened link conceals the target host until you click. Expand shortened links before following them.",
	},
	{
		ID:     6,
		Prompt: "What does the \"xn--\" prefix in a domain name indicate?",
		Options: []string{
			"An extra-secure connection",
			"A punycode-encoded internationalized name, often used for homograph attacks",
			"An experimental network",
			"A government domain",
		},
		Answer:      1,
		Explanation: "Punycode lets Unicode lookalike characters encode into ASCII, so \"apple.com\" with a Cyrillic a becomes xn--pple-43d.com.",
	},
}

// QuizQuestions returns a copy of the quiz battery
func QuizQuestions() []QuizQuestion {
	out := make([]QuizQuestion, len(quizQuestions))
	copy(out, quizQuestions)
	return out
}
