package database

import "econ_quiz_backend/internal/model"

// SeedQuestions returns the starter economics question bank, covering five
// topics across all three difficulty levels.
func SeedQuestions() []model.Question {
	return []model.Question{
		// Market Failure
		{
			Text:            "Which of the following is an example of market failure?",
			Options:         model.StringSlice{"Perfect competition", "Monopoly power", "Efficient resource allocation", "Consumer surplus maximization"},
			CorrectAnswer:   1,
			Topic:           "Market Failure",
			DifficultyLevel: 1,
			Explanation:     "Monopoly power is a form of market failure because it leads to inefficient resource allocation and deadweight loss.",
		},
		{
			Text:            "Public goods are characterized by:",
			Options:         model.StringSlice{"Rivalry and excludability", "Non-rivalry and excludability", "Rivalry and non-excludability", "Non-rivalry and non-excludability"},
			CorrectAnswer:   3,
			Topic:           "Market Failure",
			DifficultyLevel: 1,
			Explanation:     "Public goods are non-rivalrous (one person's consumption doesn't reduce availability for others) and non-excludable (difficult to prevent people from consuming them).",
		},
		{
			Text:            "Negative externalities occur when:",
			Options:         model.StringSlice{"Private costs exceed social costs", "Social costs exceed private costs", "Private benefits exceed social benefits", "Social benefits equal private benefits"},
			CorrectAnswer:   1,
			Topic:           "Market Failure",
			DifficultyLevel: 2,
			Explanation:     "Negative externalities arise when the social cost of production exceeds the private cost, leading to overproduction from society's perspective.",
		},
		{
			Text:            "The free rider problem is most associated with:",
			Options:         model.StringSlice{"Private goods", "Merit goods", "Public goods", "Demerit goods"},
			CorrectAnswer:   2,
			Topic:           "Market Failure",
			DifficultyLevel: 2,
			Explanation:     "The free rider problem occurs with public goods because people can benefit without paying, due to their non-excludable nature.",
		},
		{
			Text:            "Which policy tool would be most effective in correcting a negative consumption externality?",
			Options:         model.StringSlice{"Production subsidy", "Consumption tax", "Price ceiling", "Quantity control"},
			CorrectAnswer:   1,
			Topic:           "Market Failure",
			DifficultyLevel: 3,
			Explanation:     "A consumption tax (Pigouvian tax) internalizes the external cost, reducing consumption to the socially optimal level.",
		},

		// Fiscal Policy
		{
			Text:            "Fiscal policy involves the use of:",
			Options:         model.StringSlice{"Interest rates and money supply", "Government spending and taxation", "Exchange rates and tariffs", "Bank reserves and lending"},
			CorrectAnswer:   1,
			Topic:           "Fiscal Policy",
			DifficultyLevel: 1,
			Explanation:     "Fiscal policy refers to government use of spending and taxation to influence the economy.",
		},
		{
			Text:            "An increase in government spending will:",
			Options:         model.StringSlice{"Decrease aggregate demand", "Increase aggregate demand", "Have no effect on aggregate demand", "Only affect aggregate supply"},
			CorrectAnswer:   1,
			Topic:           "Fiscal Policy",
			DifficultyLevel: 1,
			Explanation:     "Government spending is a component of aggregate demand, so increasing it will shift AD to the right.",
		},
		{
			Text:            "The multiplier effect suggests that:",
			Options:         model.StringSlice{"Initial spending increases have smaller final impacts", "Initial spending increases have larger final impacts", "Spending has no cumulative effect", "Only government spending has multiplier effects"},
			CorrectAnswer:   1,
			Topic:           "Fiscal Policy",
			DifficultyLevel: 2,
			Explanation:     "The multiplier effect means that an initial injection of spending leads to larger overall increases in national income through successive rounds of spending.",
		},
		{
			Text:            "Automatic stabilizers include:",
			Options:         model.StringSlice{"Discretionary spending increases", "Unemployment benefits and progressive taxation", "Monetary policy changes", "Exchange rate adjustments"},
			CorrectAnswer:   1,
			Topic:           "Fiscal Policy",
			DifficultyLevel: 2,
			Explanation:     "Automatic stabilizers are fiscal mechanisms that automatically adjust to economic conditions without new government action.",
		},
		{
			Text:            "The crowding out effect occurs when:",
			Options:         model.StringSlice{"Private investment decreases due to higher interest rates from government borrowing", "Government spending directly replaces private spending", "Higher taxes reduce consumption", "Inflation reduces real income"},
			CorrectAnswer:   0,
			Topic:           "Fiscal Policy",
			DifficultyLevel: 3,
			Explanation:     "Crowding out happens when government borrowing drives up interest rates, making private investment more expensive and reducing it.",
		},

		// Monetary Policy
		{
			Text:            "Monetary policy is primarily concerned with:",
			Options:         model.StringSlice{"Government spending", "Tax rates", "Interest rates and money supply", "Trade policy"},
			CorrectAnswer:   2,
			Topic:           "Monetary Policy",
			DifficultyLevel: 1,
			Explanation:     "Monetary policy involves managing interest rates and money supply to achieve economic objectives.",
		},
		{
			Text:            "When the central bank lowers interest rates, it aims to:",
			Options:         model.StringSlice{"Reduce inflation", "Stimulate economic growth", "Increase unemployment", "Reduce government debt"},
			CorrectAnswer:   1,
			Topic:           "Monetary Policy",
			DifficultyLevel: 1,
			Explanation:     "Lower interest rates make borrowing cheaper, encouraging investment and consumption, stimulating economic growth.",
		},
		{
			Text:            "Quantitative easing involves:",
			Options:         model.StringSlice{"Raising interest rates", "Buying government bonds to increase money supply", "Reducing government spending", "Increasing reserve requirements"},
			CorrectAnswer:   1,
			Topic:           "Monetary Policy",
			DifficultyLevel: 2,
			Explanation:     "Quantitative easing is when central banks purchase government securities to inject money directly into the economy.",
		},
		{
			Text:            "The transmission mechanism of monetary policy works through:",
			Options:         model.StringSlice{"Direct government spending", "Interest rate effects on investment and consumption", "Automatic tax adjustments", "Trade balance changes"},
			CorrectAnswer:   1,
			Topic:           "Monetary Policy",
			DifficultyLevel: 2,
			Explanation:     "Monetary policy affects the economy through interest rate changes that influence borrowing, investment, and consumption decisions.",
		},
		{
			Text:            "The liquidity trap occurs when:",
			Options:         model.StringSlice{"Interest rates are so low that monetary policy becomes ineffective", "Banks have too much liquidity", "Government borrowing is excessive", "Inflation expectations are anchored"},
			CorrectAnswer:   0,
			Topic:           "Monetary Policy",
			DifficultyLevel: 3,
			Explanation:     "A liquidity trap occurs when interest rates are near zero and further monetary expansion has little effect on economic activity.",
		},

		// Supply and Demand
		{
			Text:            "If demand increases while supply remains constant, what happens to price?",
			Options:         model.StringSlice{"Price decreases", "Price increases", "Price remains the same", "Price becomes undefined"},
			CorrectAnswer:   1,
			Topic:           "Supply and Demand",
			DifficultyLevel: 1,
			Explanation:     "When demand increases and supply stays constant, there's upward pressure on price due to excess demand.",
		},
		{
			Text:            "The law of demand states that:",
			Options:         model.StringSlice{"As price increases, quantity demanded increases", "As price increases, quantity demanded decreases", "Price and quantity are unrelated", "Demand is always elastic"},
			CorrectAnswer:   1,
			Topic:           "Supply and Demand",
			DifficultyLevel: 1,
			Explanation:     "The law of demand describes the inverse relationship between price and quantity demanded, ceteris paribus.",
		},
		{
			Text:            "Price elasticity of demand measures:",
			Options:         model.StringSlice{"The slope of the demand curve", "The responsiveness of quantity demanded to price changes", "The total revenue effect", "The income effect only"},
			CorrectAnswer:   1,
			Topic:           "Supply and Demand",
			DifficultyLevel: 2,
			Explanation:     "Price elasticity of demand measures how responsive quantity demanded is to changes in price.",
		},
		{
			Text:            "If the price elasticity of demand is -0.5, demand is:",
			Options:         model.StringSlice{"Elastic", "Inelastic", "Unit elastic", "Perfectly elastic"},
			CorrectAnswer:   1,
			Topic:           "Supply and Demand",
			DifficultyLevel: 2,
			Explanation:     "When the absolute value of price elasticity is less than 1, demand is inelastic (relatively unresponsive to price changes).",
		},
		{
			Text:            "Cross-price elasticity of demand between complementary goods is:",
			Options:         model.StringSlice{"Positive", "Negative", "Zero", "Infinite"},
			CorrectAnswer:   1,
			Topic:           "Supply and Demand",
			DifficultyLevel: 3,
			Explanation:     "Complementary goods have negative cross-price elasticity because when the price of one increases, demand for both decreases.",
		},

		// Economic Growth
		{
			Text:            "Economic growth is typically measured by:",
			Options:         model.StringSlice{"Inflation rate", "Unemployment rate", "GDP growth rate", "Interest rate"},
			CorrectAnswer:   2,
			Topic:           "Economic Growth",
			DifficultyLevel: 1,
			Explanation:     "Economic growth is commonly measured by the percentage increase in real GDP over time.",
		},
		{
			Text:            "The production possibility frontier shifts outward when:",
			Options:         model.StringSlice{"Resources are fully employed", "Technology improves", "Unemployment increases", "Inflation occurs"},
			CorrectAnswer:   1,
			Topic:           "Economic Growth",
			DifficultyLevel: 2,
			Explanation:     "Technological improvements increase productive capacity, shifting the PPF outward and enabling economic growth.",
		},
		{
			Text:            "Endogenous growth theory emphasizes:",
			Options:         model.StringSlice{"External factors determining growth", "Internal factors like human capital and innovation", "Government spending as the main driver", "Natural resource availability"},
			CorrectAnswer:   1,
			Topic:           "Economic Growth",
			DifficultyLevel: 3,
			Explanation:     "Endogenous growth theory focuses on internal factors within the economic system, particularly human capital, innovation, and knowledge spillovers.",
		},
	}
}
