package structuring

// Static keyword dictionaries used by skill extraction and, via the scorer,
// by job-description keyword extraction. Entries are stored in display casing;
// all matching is done case-insensitively. These are data tables, not logic:
// extend them without touching the matching code.

// TechnicalSkills is the curated dictionary of technical skills, tools, and
// domain terms across industries (software, office, healthcare, finance,
// legal, manufacturing, and others).
var TechnicalSkills = []string{
	// Office and productivity tools
	"Microsoft Office", "Microsoft Excel", "Excel", "Microsoft Word", "PowerPoint",
	"Outlook", "Google Workspace", "Google Sheets", "Google Docs", "SharePoint",
	"Visio", "Microsoft Access", "QuickBooks", "SAP", "Salesforce", "HubSpot",
	"Tableau", "Power BI", "Looker", "Jira", "Confluence", "Asana", "Trello",
	"Slack", "Zendesk", "ServiceNow", "Workday", "NetSuite", "Oracle",

	// Programming languages and frameworks
	"JavaScript", "TypeScript", "Python", "Java", "C++", "C#", "Go", "Ruby",
	"PHP", "Swift", "Kotlin", "Rust", "Scala", "R", "MATLAB", "Perl", "SQL",
	"NoSQL", "HTML", "CSS", "React", "Angular", "Vue", "Node.js", "Django",
	"Flask", "Spring", "Rails", ".NET", "Express", "GraphQL", "REST API",

	// Data, cloud, and infrastructure
	"AWS", "Azure", "Google Cloud", "GCP", "Docker", "Kubernetes", "Terraform",
	"Jenkins", "Git", "GitHub", "GitLab", "CI/CD", "Linux", "Unix", "Bash",
	"PowerShell", "PostgreSQL", "MySQL", "MongoDB", "Redis", "Elasticsearch",
	"Kafka", "Spark", "Hadoop", "Snowflake", "ETL", "Data Warehousing",
	"Machine Learning", "Deep Learning", "Data Analysis", "Data Science",
	"Artificial Intelligence", "Natural Language Processing", "Computer Vision",
	"Business Intelligence", "Statistics", "A/B Testing",

	// Design and media
	"Photoshop", "Illustrator", "InDesign", "Figma", "Sketch", "Adobe Creative Suite",
	"AutoCAD", "SolidWorks", "Revit", "3D Modeling", "Video Editing", "UX Design",
	"UI Design", "Wireframing",

	// Healthcare
	"Electronic Health Records", "EHR", "Epic", "Cerner", "HIPAA", "ICD-10",
	"CPT Coding", "Medical Billing", "Medical Terminology", "Patient Care",
	"Phlebotomy", "Clinical Research", "Pharmacology", "Telemetry",
	"Care Coordination", "Triage",

	// Finance and accounting
	"Financial Analysis", "Financial Modeling", "Financial Reporting", "GAAP",
	"Accounts Payable", "Accounts Receivable", "Payroll", "Auditing", "Budgeting",
	"Forecasting", "Tax Preparation", "Bookkeeping", "Risk Management",
	"Portfolio Management", "Bloomberg Terminal", "Underwriting",

	// Legal and compliance
	"Legal Research", "Westlaw", "LexisNexis", "Contract Review", "Litigation",
	"Paralegal", "Due Diligence", "Regulatory Compliance", "E-Discovery",

	// Manufacturing, logistics, and trades
	"Lean Manufacturing", "Six Sigma", "Kaizen", "CNC Machining", "Welding",
	"Quality Control", "Quality Assurance", "Supply Chain", "Inventory Management",
	"Logistics", "Forklift Operation", "OSHA", "Blueprint Reading", "HVAC",
	"Preventive Maintenance", "ERP",

	// Marketing and sales tooling
	"SEO", "SEM", "Google Analytics", "Google Ads", "Content Marketing",
	"Email Marketing", "Social Media Marketing", "CRM", "Market Research",
	"Copywriting", "Lead Generation", "Adobe Analytics", "Mailchimp",

	// Certifications and methodologies
	"PMP", "Scrum", "Agile", "Kanban", "ITIL", "CPA", "CFA", "SHRM", "CompTIA",
	"CISSP", "AWS Certified", "First Aid", "CPR",
}

// SoftSkills is the curated dictionary of soft skills and work-style traits.
var SoftSkills = []string{
	"Communication", "Written Communication", "Verbal Communication",
	"Public Speaking", "Presentation", "Active Listening", "Interpersonal",
	"Leadership", "Team Leadership", "Mentoring", "Coaching", "Delegation",
	"Decision Making", "Strategic Thinking", "Teamwork", "Collaboration",
	"Cross-functional Collaboration", "Conflict Resolution", "Relationship Building",
	"Adaptability", "Flexibility", "Resilience", "Creativity", "Innovation",
	"Problem Solving", "Critical Thinking", "Analytical Thinking", "Attention to Detail",
	"Organization", "Time Management", "Prioritization", "Multitasking",
	"Planning", "Goal Setting", "Self-Motivated", "Work Ethic", "Initiative",
	"Customer Service", "Customer Focus", "Client Relations", "Negotiation",
	"Persuasion", "Sales", "Empathy", "Patience", "Reliability", "Accountability",
}

// CommonSoftSkills is the reduced soft-skill list used by the whole-document
// fallback scan when no skills section heading is found.
var CommonSoftSkills = []string{
	"Communication", "Leadership", "Teamwork", "Problem Solving",
	"Time Management", "Adaptability", "Collaboration", "Critical Thinking",
	"Organization", "Creativity", "Attention to Detail", "Customer Service",
	"Work Ethic", "Interpersonal",
}

// skillsHeadings are the section names recognized as a skills section heading.
// Compared case-insensitively against the trimmed line with any trailing colon
// removed.
var skillsHeadings = []string{
	"skills",
	"technical skills",
	"core competencies",
	"technologies",
	"expertise",
	"competencies",
	"proficiencies",
	"capabilities",
	"key skills",
	"areas of expertise",
}

// majorSectionHeaders terminate a skills section body. A line ends the body
// when its lowercased form equals or is prefixed by one of these.
var majorSectionHeaders = []string{
	"experience", "work experience", "professional experience", "employment",
	"work history", "career",
	"education", "academic",
	"certifications", "certificates", "licenses",
	"projects", "achievements", "accomplishments", "awards",
	"publications", "volunteer", "interests", "references",
}
