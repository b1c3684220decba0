package risk

// DefaultReference returns the built-in reference-data snapshot: the verified
// event taxonomy, sub-category multipliers, political-exposure roles and
// geographic multipliers, plus the default tunables.  Deployments override
// individual tables through configuration; anything not overridden keeps
// these values.
func DefaultReference() *Reference {
	return &Reference{
		Version: "2025.2",

		EventCategories: map[string]EventCategory{
			"TER": {Name: "Terrorism", RiskScore: 100, Severity: SeverityCritical},
			"WLT": {Name: "Watch List", RiskScore: 100, Severity: SeverityCritical},
			"DEN": {Name: "Denied Entity", RiskScore: 95, Severity: SeverityCritical},
			"DTF": {Name: "Drug Trafficking", RiskScore: 90, Severity: SeverityCritical},
			"TRF": {Name: "Human Trafficking", RiskScore: 90, Severity: SeverityCritical},
			"MLA": {Name: "Money Laundering", RiskScore: 85, Severity: SeverityCritical},
			"HUM": {Name: "Human Rights Abuse", RiskScore: 85, Severity: SeverityCritical},
			"ORG": {Name: "Organized Crime", RiskScore: 85, Severity: SeverityCritical},
			"KID": {Name: "Kidnapping", RiskScore: 85, Severity: SeverityCritical},
			"SPY": {Name: "Espionage", RiskScore: 85, Severity: SeverityCritical},
			"BRB": {Name: "Bribery", RiskScore: 75, Severity: SeverityValuable},
			"FRD": {Name: "Fraud", RiskScore: 70, Severity: SeverityValuable},
			"TAX": {Name: "Tax Crime", RiskScore: 70, Severity: SeverityValuable},
			"SEC": {Name: "Securities Violation", RiskScore: 70, Severity: SeverityValuable},
			"REG": {Name: "Regulatory Action", RiskScore: 65, Severity: SeverityValuable},
			"ROB": {Name: "Robbery", RiskScore: 60, Severity: SeverityValuable},
			"SEX": {Name: "Sex Offense", RiskScore: 60, Severity: SeverityValuable},
			"PEP": {Name: "Political Exposure", RiskScore: 60, Severity: SeverityValuable},
			"SNX": {Name: "Sanctions Connect", RiskScore: 60, Severity: SeverityValuable},
			"MUR": {Name: "Murder", RiskScore: 55, Severity: SeverityInvestigative},
			"AST": {Name: "Assault", RiskScore: 55, Severity: SeverityInvestigative},
			"FUG": {Name: "Fugitive", RiskScore: 50, Severity: SeverityInvestigative},
			"BUR": {Name: "Burglary", RiskScore: 50, Severity: SeverityInvestigative},
			"TFT": {Name: "Theft", RiskScore: 50, Severity: SeverityInvestigative},
			"IGN": {Name: "Illegal Gains", RiskScore: 50, Severity: SeverityInvestigative},
			"CON": {Name: "Conspiracy", RiskScore: 45, Severity: SeverityInvestigative},
			"CFT": {Name: "Counterfeiting", RiskScore: 45, Severity: SeverityInvestigative},
			"SMG": {Name: "Smuggling", RiskScore: 45, Severity: SeverityInvestigative},
			"PSP": {Name: "Possession Stolen Property", RiskScore: 40, Severity: SeverityInvestigative},
			"IMP": {Name: "Impersonation", RiskScore: 40, Severity: SeverityInvestigative},
			"CYB": {Name: "Cyber Crime", RiskScore: 40, Severity: SeverityInvestigative},
			"OBS": {Name: "Obscenity", RiskScore: 40, Severity: SeverityInvestigative},
			"DPS": {Name: "Drug Possession", RiskScore: 35, Severity: SeverityProbative},
			"ARS": {Name: "Arson", RiskScore: 35, Severity: SeverityProbative},
			"HTE": {Name: "Hate Crime", RiskScore: 35, Severity: SeverityProbative},
			"PRJ": {Name: "Perjury", RiskScore: 30, Severity: SeverityProbative},
			"ENV": {Name: "Environmental Crime", RiskScore: 30, Severity: SeverityProbative},
			"GAM": {Name: "Illegal Gambling", RiskScore: 30, Severity: SeverityProbative},
			"ABU": {Name: "Abuse", RiskScore: 25, Severity: SeverityProbative},
			"MIS": {Name: "Misconduct", RiskScore: 25, Severity: SeverityProbative},
			"NSC": {Name: "Non-Specific Crime", RiskScore: 25, Severity: SeverityProbative},
			"DUI": {Name: "Driving Under Influence", RiskScore: 20, Severity: SeverityProbative},
			"FOR": {Name: "Forfeiture", RiskScore: 20, Severity: SeverityProbative},
			"LNS": {Name: "License Suspension", RiskScore: 15, Severity: SeverityProbative},
			"FOF": {Name: "Former OFAC", RiskScore: 10, Severity: SeverityProbative},
			"VCY": {Name: "Virtual Currency", RiskScore: 5, Severity: SeverityProbative},
		},

		EventSubCategories: map[string]EventSubCategory{
			"CVT": {Name: "Convicted", Multiplier: 1.3},
			"CNF": {Name: "Confession", Multiplier: 1.2},
			"SAN": {Name: "Sanctioned", Multiplier: 1.2},
			"SJT": {Name: "Serving Jail Time", Multiplier: 1.2},
			"GOV": {Name: "Government Official", Multiplier: 1.2},
			"ART": {Name: "Arrested", Multiplier: 1.1},
			"IND": {Name: "Indicted", Multiplier: 1.1},
			"WTD": {Name: "Wanted", Multiplier: 1.1},
			"CHG": {Name: "Charged", Multiplier: 1.0},
			"TRL": {Name: "On Trial", Multiplier: 1.0},
			"APL": {Name: "Appealed", Multiplier: 0.9},
			"FIL": {Name: "Fine Levied", Multiplier: 0.9},
			"FIM": {Name: "Fine Imposed", Multiplier: 0.9},
			"SPT": {Name: "Suspected", Multiplier: 0.8},
			"PRB": {Name: "Probe", Multiplier: 0.8},
			"ACC": {Name: "Accused", Multiplier: 0.7},
			"CMP": {Name: "Complaint Filed", Multiplier: 0.7},
			"ALL": {Name: "Alleged", Multiplier: 0.6},
			"ASC": {Name: "Associated", Multiplier: 0.6},
			"LIN": {Name: "Linked", Multiplier: 0.6},
			"ACQ": {Name: "Acquitted", Multiplier: 0.5},
			"DMS": {Name: "Dismissed", Multiplier: 0.4},
			"EXP": {Name: "Expelled", Multiplier: 0.4},
		},

		PEPRoles: map[string]PEPRole{
			"HOS": {Name: "Head of State", RiskMultiplier: 2.0, Level: "L6"},
			"CAB": {Name: "Cabinet Official", RiskMultiplier: 1.8, Level: "L5"},
			"MIL": {Name: "Military Leadership", RiskMultiplier: 1.7, Level: "L5"},
			"INF": {Name: "Infrastructure Official", RiskMultiplier: 1.6, Level: "L4"},
			"AMB": {Name: "Ambassador", RiskMultiplier: 1.6, Level: "L4"},
			"JUD": {Name: "Senior Judiciary", RiskMultiplier: 1.6, Level: "L4"},
			"NIO": {Name: "National Institution Officer", RiskMultiplier: 1.5, Level: "L4"},
			"LEG": {Name: "Legislative Branch", RiskMultiplier: 1.5, Level: "L4"},
			"GOE": {Name: "State Enterprise Executive", RiskMultiplier: 1.5, Level: "L4"},
			"REG": {Name: "Regional Official", RiskMultiplier: 1.4, Level: "L3"},
			"POL": {Name: "Political Party Official", RiskMultiplier: 1.4, Level: "L3"},
			"GCO": {Name: "Government Contractor", RiskMultiplier: 1.4, Level: "L3"},
			"MUN": {Name: "Municipal Official", RiskMultiplier: 1.3, Level: "L3"},
			"IGO": {Name: "International Org Official", RiskMultiplier: 1.3, Level: "L3"},
			"ISO": {Name: "International Sport Official", RiskMultiplier: 1.2, Level: "L2"},
			"FAM": {Name: "Family Member", RiskMultiplier: 1.2, Level: "L2"},
			"ASC": {Name: "Close Associate", RiskMultiplier: 1.1, Level: "L1"},
		},

		GeographicMultipliers: map[string]float64{
			"AF": 2.5, "SY": 2.5, "KP": 2.5,
			"IR": 2.3,
			"RU": 1.8,
			"VE": 1.7,
			"CN": 1.4,
			"TR": 1.2, "BR": 1.2, "IN": 1.2,
			"US": 0.95, "GB": 0.95,
			"CH": 0.9,
		},

		SanctionedCountries: []string{"IR", "KP", "SY"},
		ConflictZones:       []string{"AF", "SY", "YE"},

		Tiers: []Tier{
			{Label: "Critical", Min: 80, Color: "#d32f2f", Description: "Severe risk requiring immediate escalation"},
			{Label: "Valuable", Min: 60, Color: "#f57c00", Description: "Elevated risk warranting enhanced due diligence"},
			{Label: "Investigative", Min: 40, Color: "#fbc02d", Description: "Moderate risk meriting further investigation"},
			{Label: "Probative", Min: 0, Color: "#1976d2", Description: "Low risk suitable for standard monitoring"},
		},

		Weights: EnsembleWeights{
			Events:        0.45,
			PEP:           0.20,
			Geographic:    0.15,
			Relationships: 0.10,
			Behavior:      0.05,
			Anomalies:     0.05,
		},

		DecayRules: []DecayRule{
			{Categories: []string{"TER", "WLT", "DEN"}, Rate: 0.05, Floor: 0.5},
			{Categories: []string{"MLA", "DTF", "ORG"}, Rate: 0.08, Floor: 0.3},
		},
		DecayDefault: DecayRule{Rate: 0.12, Floor: 0.1},

		SynergyBoosts: map[string]float64{
			"TER:CVT": 1.2,
			"MLA:SAN": 1.2,
			"ORG:ART": 1.1,
			"DTF:IND": 1.1,
		},

		PEPKeywords: map[string][]string{
			"HOS": {"president", "prime minister", "head of state", "monarch", "king", "queen"},
			"CAB": {"minister", "cabinet", "secretary of state"},
			"MIL": {"general", "admiral", "military commander"},
			"JUD": {"judge", "justice", "supreme court"},
			"FAM": {"family member", "spouse", "son of", "daughter of"},
			"ASC": {"associate", "advisor", "aide"},
		},

		FamilyAssociateRoles: []string{"FAM", "ASC"},

		HistoryCapacity: 1000,
	}
}
