package i18n

var builtin = map[string]Entry{
	// navigation
	"dashboard":      {"Dashboard", "لوحة التحكم"},
	"documents":      {"Documents", "المستندات"},
	"upload":         {"Upload", "رفع"},
	"cases":          {"Cases", "الحالات"},
	"subjects":       {"Subjects", "الموضوعات"},
	"settings":       {"Settings", "الإعدادات"},
	"help":           {"Help", "المساعدة"},
	"mainMenu":       {"Main Menu", "القائمة الرئيسية"},
	"administration": {"Administration", "الإدارة"},
	"users":          {"Users", "المستخدمين"},

	// common
	"search":   {"Search", "بحث"},
	"filter":   {"Filter", "تصفية"},
	"export":   {"Export", "تصدير"},
	"add":      {"Add", "إضافة"},
	"edit":     {"Edit", "تعديل"},
	"delete":   {"Delete", "حذف"},
	"save":     {"Save", "حفظ"},
	"cancel":   {"Cancel", "إلغاء"},
	"submit":   {"Submit", "إرسال"},
	"back":     {"Back", "رجوع"},
	"next":     {"Next", "التالي"},
	"previous": {"Previous", "السابق"},
	"loading":  {"Loading...", "جاري التحميل..."},
	"error":    {"Error", "خطأ"},
	"success":  {"Success", "نجح"},

	// cases
	"flaggedCases":   {"Flagged Cases", "الحالات المُبلغ عنها"},
	"newCases":       {"new", "جديد"},
	"caseDetail":     {"Case Detail", "تفاصيل الحالة"},
	"caseType":       {"Case Type", "نوع الحالة"},
	"status":         {"Status", "الحالة"},
	"assignedTo":     {"Assigned To", "المُعين إلى"},
	"flaggedBy":      {"Flagged By", "تم الإبلاغ بواسطة"},
	"flaggedDate":    {"Flagged Date", "تاريخ الإبلاغ"},
	"severity":       {"Severity", "الخطورة"},
	"recommendation": {"Recommendation", "التوصية"},
	"decision":       {"Decision", "القرار"},
	"contradiction":  {"Contradiction", "تناقض"},
	"overlap":        {"Overlap", "تداخل"},
	"gap":            {"Gap", "فجوة"},
	"new":            {"New", "جديد"},
	"under_review":   {"Under Review", "قيد المراجعة"},
	"validated":      {"Validated", "موثق"},
	"rejected":       {"Rejected", "مرفوض"},
	"high":           {"High", "عالي"},
	"medium":         {"Medium", "متوسط"},
	"low":            {"Low", "منخفض"},

	// case detail
	"caseSummary":           {"Case Summary", "ملخص الحالة"},
	"documentsInvolved":     {"Documents Involved", "المستندات المعنية"},
	"currentStatus":         {"Current Status", "الحالة الحالية"},
	"severityLevel":         {"Severity Level", "مستوى الخطورة"},
	"aiAnalysis":            {"AI-Powered Contradiction Analysis", "تحليل التناقضات بالذكاء الاصطناعي"},
	"impactAnalysis":        {"Impact Analysis & Risk Assessment", "تحليل التأثير وتقييم المخاطر"},
	"recommendationSection": {"AI-Generated Recommendation", "التوصية المُنشأة بالذكاء الاصطناعي"},
	"lawComparison":         {"Law Comparison", "مقارنة القوانين"},
	"commentsAnnotations":   {"Comments & Annotations", "التعليقات والملاحظات"},
	"finalRecommendation":   {"Final Recommendation", "التوصية النهائية"},
	"submitDecision":        {"Submit Decision", "إرسال القرار"},

	// header
	"profile":       {"Profile", "الملف الشخصي"},
	"language":      {"Language", "اللغة"},
	"logout":        {"Logout", "تسجيل الخروج"},
	"notifications": {"Notifications", "الإشعارات"},

	// actions
	"addNewCase":     {"Add New Case", "إضافة حالة جديدة"},
	"viewDetails":    {"View Details", "عرض التفاصيل"},
	"assign":         {"Assign", "تعيين"},
	"validate":       {"Validate Contradiction", "قبول التناقض كصحيح"},
	"reject":         {"Reject - False Positive", "رفض - نتيجة إيجابية خاطئة"},
	"exportPDF":      {"Export PDF", "تصدير PDF"},
	"downloadReport": {"Download Report", "تحميل التقرير"},

	// status messages
	"caseNotFound":          {"Case not found", "الحالة غير موجودة"},
	"noResults":             {"No results found", "لا توجد نتائج"},
	"selectDecision":        {"Please select a decision", "يرجى اختيار قرار"},
	"provideRecommendation": {"Please provide a recommendation", "يرجى تقديم توصية"},

	// roles
	"admin":        {"Admin", "مسؤول"},
	"legalAnalyst": {"Legal Analyst", "محلل قانوني"},
	"reviewer":     {"Reviewer", "مراجع"},
	"viewer":       {"Viewer", "مشاهد"},

	// misc
	"unassigned": {"Unassigned", "غير معين"},
	"arabic":     {"Arabic", "العربية"},
	"english":    {"English", "الإنجليزية"},

	// auth
	"appTitle":   {"Qatar Legislative Analysis System", "نظام تحليل التشريعات القطرية"},
	"brand":      {"Legal System", "القانون"},
	"signIn":     {"Sign In", "تسجيل الدخول"},
	"signInHint": {"Sign in to access the legal analysis platform", "سجّل الدخول للوصول إلى منصة التحليل القانوني"},
	"email":      {"Email", "البريد الإلكتروني"},
	"password":   {"Password", "كلمة المرور"},
	"userName":   {"Ahmed Mohammed", "أحمد محمد"},

	// dashboard
	"dashboardSubtitle":  {"Overview of legislative analysis activity", "نظرة عامة على نشاط التحليل التشريعي"},
	"totalDocuments":     {"Total Documents", "إجمالي المستندات"},
	"lawsInDatabase":     {"Laws in database", "قوانين في قاعدة البيانات"},
	"requiringReview":    {"Requiring review", "تتطلب المراجعة"},
	"validatedThisMonth": {"Validated This Month", "الموثقة هذا الشهر"},
	"casesCompleted":     {"Cases completed", "حالات مكتملة"},
	"avgProcessingTime":  {"Avg Processing Time", "متوسط وقت المعالجة"},
	"days":               {"days", "أيام"},
	"recentCases":        {"Recent Flagged Cases", "أحدث الحالات المُبلغ عنها"},
	"viewAll":            {"View All", "عرض الكل"},
	"topConflictAreas":   {"Top Conflict Areas", "أكثر مجالات التعارض"},
	"conflicts":          {"conflicts", "تعارضات"},

	// documents
	"documentsSubtitle": {"Browse the legal document repository", "استعراض مستودع المستندات القانونية"},
	"searchDocuments":   {"Search by law number, title, or year...", "ابحث برقم القانون أو العنوان أو السنة..."},
	"lawNumber":         {"Law Number", "رقم القانون"},
	"year":              {"Year", "السنة"},
	"title":             {"Title", "العنوان"},
	"subject":           {"Subject", "الموضوع"},
	"version":           {"Version", "الإصدار"},
	"articles":          {"Articles", "المواد"},
	"unknown":           {"Unknown", "غير معروف"},
	"draft":             {"Draft", "مسودة"},
	"processing":        {"Processing", "قيد المعالجة"},
	"active":            {"Active", "نشط"},
	"archived":          {"Archived", "مؤرشف"},

	// upload
	"uploadDocument":   {"Upload Document", "رفع مستند"},
	"uploadSubtitle":   {"Add a new law to the repository for analysis", "أضف قانوناً جديداً إلى المستودع لتحليله"},
	"titleAr":          {"Title (Arabic)", "العنوان (بالعربية)"},
	"titleEn":          {"Title (English)", "العنوان (بالإنجليزية)"},
	"jurisdiction":     {"Jurisdiction", "الاختصاص"},
	"selectSubject":    {"Select subject", "اختر الموضوع"},
	"documentFile":     {"Document File", "ملف المستند"},
	"pdfOnly":          {"PDF files only", "ملفات PDF فقط"},
	"requiredFields":   {"Please fill in all required fields", "يرجى تعبئة جميع الحقول المطلوبة"},
	"invalidYear":      {"Please enter a valid year", "يرجى إدخال سنة صحيحة"},
	"notPDF":           {"Only PDF files are accepted", "يُقبل فقط ملفات PDF"},
	"fileTooLarge":     {"The file exceeds the maximum upload size", "الملف يتجاوز الحد الأقصى للحجم"},
	"uploadSuccess":    {"Document uploaded successfully", "تم رفع المستند بنجاح"},
	"uploadProcessing": {"The document is now being processed for analysis.", "يجري الآن معالجة المستند لتحليله."},

	// case list
	"casesSubtitle":  {"Manage flagged contradictions, overlaps, and gaps", "إدارة التناقضات والتداخلات والفجوات المُبلغ عنها"},
	"searchCases":    {"Search cases by ID, document, or keywords...", "ابحث في الحالات حسب المعرف أو المستند أو الكلمات..."},
	"allTypes":       {"All Types", "جميع الأنواع"},
	"allStatuses":    {"All Statuses", "جميع الحالات"},
	"allSubjects":    {"All Subjects", "جميع الموضوعات"},
	"allReviewers":   {"All Reviewers", "جميع المراجعين"},
	"activeFilters":  {"active filter(s)", "عوامل تصفية نشطة"},
	"clearFilters":   {"Clear filters", "مسح عوامل التصفية"},
	"applyFilters":   {"Apply", "تطبيق"},
	"caseID":         {"Case ID", "رقم الحالة"},
	"actions":        {"Actions", "الإجراءات"},
	"view":           {"View", "عرض"},
	"reviewerNumber": {"Reviewer #", "المراجع #"},
	"selected":       {"selected", "محددة"},
	"selectAll":      {"Select all", "تحديد الكل"},
	"clearSelection": {"Clear selection", "إلغاء التحديد"},
	"assignSelected": {"Assign Selected", "تعيين المحدد"},
	"assignRecorded": {"Assignment request recorded", "تم تسجيل طلب التعيين"},
	"page":           {"Page", "صفحة"},
	"of":             {"of", "من"},
	"showing":        {"Showing", "عرض"},

	// case detail pages
	"backToCases":           {"Back to Cases", "العودة إلى الحالات"},
	"caseNotFoundDetail":    {"The requested case could not be found.", "تعذر العثور على الحالة المطلوبة."},
	"analysis":              {"Analysis", "تحليل"},
	"validatedBy":           {"Validated by", "تم التوثيق بواسطة"},
	"on":                    {"on", "في"},
	"contradictionAnalysis": {"Contradiction Analysis", "تحليل التناقض"},
	"keyDifferences":        {"Key Differences Identified:", "الاختلافات الرئيسية المحددة:"},
	"article":               {"Article", "المادة"},
	"effective":             {"Effective", "ساري من"},
	"flagged":               {"Flagged", "مُبلغ عنها"},
	"detectionMethod":       {"Detection Method", "طريقة الكشف"},
	"textSimilarity":        {"Text Similarity", "تشابه النص"},
	"semanticOverlap":       {"Semantic Overlap", "التداخل الدلالي"},
	"logicalInconsistency":  {"Logical Inconsistency", "عدم الاتساق المنطقي"},
	"detected":              {"Detected", "مكتشف"},
	"notDetected":           {"Not Detected", "غير مكتشف"},
	"keyFindings":           {"Key Findings", "النتائج الرئيسية"},
	"legalPrinciples":       {"Legal Principles", "المبادئ القانونية"},
	"High Confidence":       {"High Confidence", "ثقة عالية"},
	"Medium Confidence":     {"Medium Confidence", "ثقة متوسطة"},
	"Low Confidence":        {"Low Confidence", "ثقة منخفضة"},
	"affectedAgencies":      {"Affected Government Agencies", "الجهات الحكومية المتأثرة"},
	"affectedStakeholders":  {"Affected Stakeholders", "الأطراف المعنية المتأثرة"},
	"consequences":          {"Potential Consequences", "العواقب المحتملة"},
	"riskAssessment":        {"Risk Assessment", "تقييم المخاطر"},
	"complianceRisk":        {"Compliance Risk", "مخاطر الامتثال"},
	"litigationRisk":        {"Litigation Risk", "مخاطر التقاضي"},
	"operationalRisk":       {"Operational Risk", "المخاطر التشغيلية"},
	"compliance":            {"Compliance", "الامتثال"},
	"litigation":            {"Litigation", "التقاضي"},
	"financial":             {"Financial", "مالي"},
	"operational":           {"Operational", "تشغيلي"},
	"applicableLaw":         {"Applicable Law", "القانون الواجب التطبيق"},
	"legalBasis":            {"Legal Basis", "الأساس القانوني"},
	"implementationSteps":   {"Implementation Steps", "خطوات التنفيذ"},
	"noComments":            {"No comments yet", "لا توجد تعليقات بعد"},
	"commentPlaceholder":    {"Add your comment or annotation...", "أضف تعليقك أو ملاحظتك..."},
	"addComment":            {"Add Comment", "إضافة تعليق"},
	"commentAdded":          {"Comment added successfully", "تمت إضافة التعليق بنجاح"},
	"commentRequired":       {"Please enter a comment", "يرجى إدخال تعليق"},
	"selectDecisionOption":  {"Select decision...", "اختر القرار..."},
	"validateOption":        {"Validate – Contradiction Confirmed", "قبول – تم تأكيد التناقض"},
	"rejectOption":          {"Reject – False Positive", "رفض – نتيجة إيجابية خاطئة"},
	"recommendationHint":    {"Provide your detailed recommendation for resolving this contradiction...", "قدم توصيتك التفصيلية لحل هذا التناقض..."},
	"validateCase":          {"Validate Case", "توثيق الحالة"},
	"rejectCase":            {"Reject Case", "رفض الحالة"},
	"caseValidated":         {"Case validated successfully", "تم توثيق الحالة بنجاح"},
	"caseRejected":          {"Case rejected successfully", "تم رفض الحالة بنجاح"},
	"redirecting":           {"Returning to the case list...", "جارٍ العودة إلى قائمة الحالات..."},
	"decisionHistory":       {"Decision History", "سجل القرارات"},
	"auditLog":              {"Audit Log", "سجل التدقيق"},

	// subjects, settings, help
	"subjectTaxonomy":   {"Subject Taxonomy", "تصنيف الموضوعات"},
	"subjectsSubtitle":  {"Legal subject categories used to classify documents", "فئات الموضوعات القانونية المستخدمة لتصنيف المستندات"},
	"childCategory":     {"Child category", "فئة فرعية"},
	"settingsSubtitle":  {"Manage system configuration and preferences", "إدارة إعدادات النظام والتفضيلات"},
	"saveChanges":       {"Save Changes", "حفظ التغييرات"},
	"helpTitle":         {"Help & Training", "المساعدة والتدريب"},
	"helpSubtitle":      {"User guides, documentation, and support", "أدلة المستخدم والوثائق والدعم"},
	"notFoundTitle":     {"Page not found", "الصفحة غير موجودة"},
	"notFoundMessage":   {"The page you are looking for does not exist.", "الصفحة التي تبحث عنها غير موجودة."},
	"returnToDashboard": {"Return to Dashboard", "العودة إلى لوحة التحكم"},
}
