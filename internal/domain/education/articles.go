// Package education holds the built-in cycle education library: the
// article collection and the frequently asked questions served by the
// /learn and /faq commands. The content is static and ships with the
// binary; there is no per-chat state here.
package education

// Article is one educational text in the library.
type Article struct {
	ID              string
	Category        string
	Title           string
	Summary         string
	Content         string
	ReadTimeMinutes int
	Tags            []string
}

// FAQ is one question/answer pair in the library.
type FAQ struct {
	ID       string
	Question string
	Answer   string
	Category string
}

// ArticleByNumber returns the 1-based nth article, matching the
// numbering shown by the article list.
func ArticleByNumber(n int) (Article, bool) {
	if n < 1 || n > len(Articles) {
		return Article{}, false
	}
	return Articles[n-1], true
}

// FAQByNumber returns the 1-based nth FAQ, matching the numbering
// shown by the question list.
func FAQByNumber(n int) (FAQ, bool) {
	if n < 1 || n > len(FAQs) {
		return FAQ{}, false
	}
	return FAQs[n-1], true
}

// Articles is the article library, in display order.
var Articles = []Article{
	{
		ID:       "understanding-menstrual-cycle",
		Category: "menstrual-health",
		Title:    "Understanding Your Menstrual Cycle",
		Summary:  "Learn about the four phases of the menstrual cycle and what happens in your body.",
		Content: `The menstrual cycle is divided into four main phases:

Menstrual Phase (Days 1-5)
This is when you have your period. The uterine lining sheds, and hormone levels are at their lowest. You might feel tired or experience cramps.

Follicular Phase (Days 1-13)
Overlapping with menstruation, this phase sees rising estrogen levels as your body prepares to release an egg. Energy levels typically increase.

Ovulation Phase (Day 14)
A mature egg is released from the ovary. This is your most fertile time. You might notice increased cervical mucus and energy.

Luteal Phase (Days 15-28)
After ovulation, progesterone rises to prepare for potential pregnancy. PMS symptoms may appear as hormone levels drop if pregnancy doesn't occur.

Understanding these phases helps you anticipate changes in your body, mood, and energy levels.`,
		ReadTimeMinutes: 5,
		Tags:            []string{"basics", "cycle", "phases"},
	},
	{
		ID:       "tracking-fertility-signs",
		Category: "fertility",
		Title:    "Tracking Your Fertility Signs",
		Summary:  "Learn how to identify and track key fertility indicators.",
		Content: `Your body gives several signs about fertility:

Cervical Mucus
Changes throughout your cycle. Around ovulation, it becomes clear, stretchy, and resembles raw egg white - perfect for sperm survival.

Basal Body Temperature (BBT)
Your lowest body temperature at rest. It rises slightly (0.5-1F) after ovulation due to progesterone.

Ovulation Predictor Kits
Detect the LH surge that happens 24-36 hours before ovulation. Most accurate when used in the afternoon.

Cervical Position
Your cervix changes position and texture. During fertile days, it's higher, softer, and more open.

Mittelschmerz
Some women feel mild pain or cramping during ovulation on one side of the lower abdomen.

Tracking multiple signs gives you the most accurate picture of your fertile window.`,
		ReadTimeMinutes: 6,
		Tags:            []string{"fertility", "ovulation", "tracking"},
	},
	{
		ID:       "managing-pms",
		Category: "symptoms",
		Title:    "Managing PMS Symptoms",
		Summary:  "Practical strategies to reduce premenstrual syndrome symptoms.",
		Content: `PMS affects up to 75% of women. Here's how to manage it:

Physical Symptoms
- Exercise regularly to reduce bloating and mood swings
- Reduce salt intake to minimize water retention
- Take magnesium supplements (consult your doctor first)
- Apply heat for cramps

Emotional Symptoms
- Get adequate sleep (7-9 hours)
- Practice stress-reduction techniques like meditation
- Maintain stable blood sugar with regular, balanced meals
- Consider vitamin B6 supplements

Lifestyle Adjustments
- Limit caffeine and alcohol
- Stay hydrated
- Track your symptoms to identify patterns
- Plan lighter schedules during PMS days if possible

When to See a Doctor
If PMS severely impacts your daily life, you may have PMDD (Premenstrual Dysphoric Disorder), which requires medical treatment.`,
		ReadTimeMinutes: 5,
		Tags:            []string{"pms", "symptoms", "wellbeing"},
	},
	{
		ID:       "nutrition-for-cycle",
		Category: "lifestyle",
		Title:    "Cycle-Syncing Your Nutrition",
		Summary:  "Optimize your diet for each phase of your menstrual cycle.",
		Content: `Different cycle phases have different nutritional needs:

Menstrual Phase
- Iron-rich foods (spinach, red meat) to replace blood loss
- Omega-3 fatty acids to reduce inflammation
- Warm, comforting foods
- Stay hydrated

Follicular Phase
- Fresh fruits and vegetables
- Lean proteins
- Fermented foods for gut health
- Light, energizing meals

Ovulation Phase
- Fiber-rich foods to eliminate excess estrogen
- Raw vegetables and fruits
- Anti-inflammatory foods
- Lighter portions as metabolism is higher

Luteal Phase
- Complex carbohydrates for serotonin
- Magnesium-rich foods (dark chocolate, nuts)
- Calcium to reduce PMS
- Vitamin B6 foods (chickpeas, bananas)

Listen to your body's cravings - they often indicate what you need!`,
		ReadTimeMinutes: 6,
		Tags:            []string{"nutrition", "lifestyle", "wellness"},
	},
	{
		ID:       "irregular-periods",
		Category: "menstrual-health",
		Title:    "When to Worry About Irregular Periods",
		Summary:  "Understanding what's normal and when to seek medical advice.",
		Content: `Cycle length varies between women, but when should you be concerned?

Normal Variations
- Cycles between 21-35 days are generally normal
- Slight variations (2-3 days) month to month
- Changes during stress, travel, or illness
- Irregular cycles in the first few years after first period
- Changes approaching menopause (age 45+)

Red Flags - See a Doctor If:
- Periods stop for 3+ months (not pregnant)
- Cycles shorter than 21 days or longer than 35 days
- Bleeding lasts more than 7 days
- Very heavy bleeding (changing pad/tampon every hour)
- Severe pain that interferes with daily activities
- Bleeding between periods
- Post-menopausal bleeding

Common Causes of Irregularity
- Polycystic Ovary Syndrome (PCOS)
- Thyroid disorders
- Significant weight changes
- Excessive exercise
- Stress
- Certain medications

Early detection and treatment of underlying conditions is important for long-term health.`,
		ReadTimeMinutes: 5,
		Tags:            []string{"irregularity", "health", "medical"},
	},
}

// FAQs is the question library, in display order.
var FAQs = []FAQ{
	{
		ID:       "faq-1",
		Question: "How long is a normal menstrual cycle?",
		Answer:   "A normal menstrual cycle ranges from 21 to 35 days, measured from the first day of one period to the first day of the next. The average is 28 days, but variations are completely normal.",
		Category: "menstrual-health",
	},
	{
		ID:       "faq-2",
		Question: "Can I get pregnant during my period?",
		Answer:   "While unlikely, it is possible, especially if you have a shorter cycle or longer periods. Sperm can survive in the reproductive tract for up to 5 days, so if you ovulate early, conception could occur.",
		Category: "fertility",
	},
	{
		ID:       "faq-3",
		Question: "How accurate are period tracking apps?",
		Answer:   "Apps are most accurate when you have regular cycles and consistently log data. Predictions are based on your historical patterns and become more accurate over time. However, they should not be relied upon as a sole method of contraception.",
		Category: "faq",
	},
	{
		ID:       "faq-4",
		Question: "What causes PMS?",
		Answer:   "PMS is caused by hormonal fluctuations in the luteal phase of your cycle. Dropping estrogen and progesterone levels affect neurotransmitters like serotonin, leading to physical and emotional symptoms.",
		Category: "symptoms",
	},
	{
		ID:       "faq-5",
		Question: "When is the best time to take a pregnancy test?",
		Answer:   "For the most accurate result, wait until at least the first day of your missed period. Testing too early may result in a false negative because hCG levels may not be high enough to detect.",
		Category: "fertility",
	},
	{
		ID:       "faq-6",
		Question: "What is ovulation pain?",
		Answer:   "Ovulation pain (mittelschmerz) is a one-sided lower abdominal pain that some women experience during ovulation. It is caused by the release of the egg from the ovary and is usually mild and brief.",
		Category: "symptoms",
	},
	{
		ID:       "faq-7",
		Question: "Can stress affect my period?",
		Answer:   "Yes, stress can significantly impact your menstrual cycle. High stress levels can delay ovulation, making your period late, or in some cases, cause you to skip a period entirely.",
		Category: "menstrual-health",
	},
	{
		ID:       "faq-8",
		Question: "What is a fertile window?",
		Answer:   "Your fertile window is the 6-day period ending on the day of ovulation. This includes the 5 days before ovulation and the day of ovulation itself, when pregnancy is most likely to occur.",
		Category: "fertility",
	},
	{
		ID:       "faq-9",
		Question: "Is it normal to have blood clots during my period?",
		Answer:   "Small blood clots (smaller than a quarter) are normal and occur when menstrual blood pools before leaving the body. However, large or frequent clots may indicate heavy bleeding and should be discussed with a doctor.",
		Category: "menstrual-health",
	},
	{
		ID:       "faq-10",
		Question: "Can I exercise during my period?",
		Answer:   "Yes! Exercise during your period is safe and can actually help reduce cramps, improve mood, and decrease bloating. Listen to your body and adjust intensity as needed.",
		Category: "lifestyle",
	},
}
