package sections

// Sample content shown by every section. Job data is static on purpose: the
// page builder has no job-listing backend.

type Job struct {
	Title      string
	Department string
	Location   string
	Type       string
}

var sampleJobs = []Job{
	{Title: "Senior Backend Engineer", Department: "Engineering", Location: "Remote (US)", Type: "Full-time"},
	{Title: "Product Designer", Department: "Design", Location: "New York, NY", Type: "Full-time"},
	{Title: "Customer Success Manager", Department: "Customer Success", Location: "Austin, TX", Type: "Full-time"},
	{Title: "Data Analyst", Department: "Operations", Location: "London, UK", Type: "Contract"},
	{Title: "Engineering Intern", Department: "Engineering", Location: "Remote", Type: "Internship"},
}

// SampleJobs returns the hardcoded openings.
func SampleJobs() []Job {
	return append([]Job{}, sampleJobs...)
}

type FAQItem struct {
	Question string
	Answer   string
}

var sampleFAQ = []FAQItem{
	{Question: "What does the interview process look like?", Answer: "A recruiter call, a skills conversation with the team, and a final meeting with the hiring manager. Most processes finish within three weeks."},
	{Question: "Do you offer remote work?", Answer: "Many roles are fully remote and every office offers flexible hybrid schedules."},
	{Question: "Can I apply for more than one role?", Answer: "Yes. Apply to every role that fits and our recruiters will route you to the best match."},
	{Question: "Do you sponsor visas?", Answer: "We sponsor visas for many engineering and design roles. Ask your recruiter for details."},
}

func SampleFAQ() []FAQItem {
	return append([]FAQItem{}, sampleFAQ...)
}

type card struct {
	Icon  string
	Title string
	Body  string
}

var benefits = []card{
	{Icon: "🩺", Title: "Health coverage", Body: "Medical, dental and vision for you and your family."},
	{Icon: "🏝", Title: "Flexible time off", Body: "Take the time you need, with a four-week minimum."},
	{Icon: "📈", Title: "Equity", Body: "Every employee shares in the company's success."},
	{Icon: "🎓", Title: "Learning budget", Body: "An annual stipend for courses, books and conferences."},
	{Icon: "🏠", Title: "Remote setup", Body: "A home-office budget to work comfortably anywhere."},
	{Icon: "👶", Title: "Parental leave", Body: "Sixteen weeks of paid leave for every new parent."},
}

var locations = []card{
	{Icon: "🗽", Title: "New York", Body: "Headquarters in the Flatiron district."},
	{Icon: "🤠", Title: "Austin", Body: "Customer success and sales hub."},
	{Icon: "🎡", Title: "London", Body: "Our European home base."},
	{Icon: "🌍", Title: "Remote", Body: "Teammates in more than twenty countries."},
}

var hiringSteps = []card{
	{Icon: "1", Title: "Apply", Body: "Send your application for any open role."},
	{Icon: "2", Title: "Recruiter call", Body: "A 30 minute conversation about you and the role."},
	{Icon: "3", Title: "Team interviews", Body: "Meet the people you would work with."},
	{Icon: "4", Title: "Offer", Body: "We move quickly once we find the right fit."},
}

var deiCommitments = []card{
	{Icon: "🤝", Title: "Employee resource groups", Body: "Seven employee-led communities with executive sponsors."},
	{Icon: "⚖️", Title: "Pay equity", Body: "Annual third-party pay equity audits."},
	{Icon: "🧭", Title: "Inclusive hiring", Body: "Structured interviews and diverse panels for every role."},
}

var videos = []card{
	{Icon: "▶", Title: "A day on the engineering team", Body: "3:12"},
	{Icon: "▶", Title: "Inside our London office", Body: "2:45"},
	{Icon: "▶", Title: "Why people stay", Body: "4:05"},
}

var testimonials = []card{
	{Icon: "Maya R.", Title: "Staff Engineer", Body: "I have grown more here in two years than in the five before."},
	{Icon: "Jonah K.", Title: "Account Executive", Body: "The people are the reason I joined and the reason I stay."},
	{Icon: "Priya S.", Title: "Product Manager", Body: "Real ownership from day one, with a team that has your back."},
}

var team = []card{
	{Icon: "AL", Title: "Ana Lopez", Body: "Chief Executive Officer"},
	{Icon: "DW", Title: "David Wu", Body: "VP of Engineering"},
	{Icon: "SO", Title: "Sarah Okafor", Body: "Head of People"},
	{Icon: "TB", Title: "Tom Berg", Body: "Head of Design"},
}

var footerLinks = []string{"About", "Careers", "Blog", "Privacy", "Contact"}
