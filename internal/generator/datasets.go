package generator

var valuePropositions = map[string][]Item{
	"COAL": {
		{"Consistent Coking Coal Quality", "Low-ash metallurgical coal blended to customer specification", "PRODUCT", "HIGH"},
		{"Secure Thermal Supply", "Long-life reserves underpinning baseload power contracts", "SUPPLY", "HIGH"},
		{"Rail and Port Integration", "Mine-to-ship logistics with contracted rail and terminal capacity", "LOGISTICS", "MEDIUM"},
	},
	"COPPER": {
		{"High Grade Copper Concentrate", "Clean concentrate with low penalty elements for smelters", "PRODUCT", "HIGH"},
		{"LME Grade A Cathode", "Refined copper meeting exchange delivery standards", "PRODUCT", "HIGH"},
		{"Responsible Production", "Copper Mark aligned operations with traceable supply", "ESG", "MEDIUM"},
		{"Energy Transition Metal", "Copper for electrification grids and EV supply chains", "MARKET", "MEDIUM"},
	},
	"GOLD": {
		{"Dore Bar Production", "Gold dore delivered to accredited refiners", "PRODUCT", "HIGH"},
		{"Low Cost Ounces", "All-in sustaining cost in the lowest industry quartile", "COST", "HIGH"},
		{"Conflict Free Gold", "Responsible gold certification across the supply chain", "ESG", "MEDIUM"},
	},
	"IRON_ORE": {
		{"Premium Fines Product", "High iron content fines with low impurities", "PRODUCT", "HIGH"},
		{"Lump Ore Supply", "Direct charge lump ore reducing sinter requirements", "PRODUCT", "MEDIUM"},
		{"Reliable Shipping Schedule", "Integrated rail and port system meeting laycan windows", "LOGISTICS", "HIGH"},
	},
	"LITHIUM": {
		{"Battery Grade Spodumene", "SC6 concentrate for hydroxide conversion", "PRODUCT", "HIGH"},
		{"Lithium Hydroxide Supply", "Battery grade hydroxide qualified with cathode makers", "PRODUCT", "HIGH"},
		{"Traceable Critical Mineral", "Chain of custody for battery passport requirements", "ESG", "MEDIUM"},
	},
	"URANIUM": {
		{"Uranium Oxide Concentrate", "U3O8 produced under safeguards for utility fuel cycles", "PRODUCT", "HIGH"},
		{"Long Term Fuel Security", "Multi-year contracts supporting reactor fuel planning", "SUPPLY", "HIGH"},
		{"Regulatory Assurance", "Licensed operations with transparent radiation reporting", "COMPLIANCE", "MEDIUM"},
	},
	generic: {
		{"Reliable Product Supply", "Consistent product volumes delivered to contract", "SUPPLY", "HIGH"},
		{"Competitive Cost Position", "Operating costs benchmarked against peers", "COST", "MEDIUM"},
		{"Safe and Sustainable Operations", "Zero harm culture and strong environmental performance", "ESG", "MEDIUM"},
	},
}

var customerSegments = map[string][]Item{
	"COAL": {
		{"Integrated Steel Mills", "Blast furnace operators in North Asia and India", "INDUSTRIAL", "HIGH"},
		{"Power Utilities", "Coal-fired generators on long term supply agreements", "UTILITY", "HIGH"},
	},
	"COPPER": {
		{"Custom Smelters", "Third-party smelters buying concentrate on TC/RC terms", "INDUSTRIAL", "HIGH"},
		{"Wire and Cable Manufacturers", "Rod mills converting cathode for power and telecoms", "INDUSTRIAL", "MEDIUM"},
		{"Commodity Traders", "Merchants taking spot and term cargoes", "TRADER", "MEDIUM"},
	},
	"GOLD": {
		{"Precious Metal Refiners", "LBMA accredited refineries", "INDUSTRIAL", "HIGH"},
		{"Bullion Banks", "Financial institutions buying refined bars", "FINANCIAL", "MEDIUM"},
	},
	"IRON_ORE": {
		{"Chinese Steel Mills", "Large blast furnace operators buying seaborne ore", "INDUSTRIAL", "HIGH"},
		{"Japanese and Korean Mills", "Quality-focused integrated steelmakers", "INDUSTRIAL", "MEDIUM"},
	},
	"LITHIUM": {
		{"Cathode Manufacturers", "Producers of NMC and LFP cathode material", "INDUSTRIAL", "HIGH"},
		{"Battery Cell Makers", "Gigafactories securing direct offtake", "INDUSTRIAL", "HIGH"},
		{"Automotive OEMs", "Carmakers contracting raw materials upstream", "INDUSTRIAL", "MEDIUM"},
	},
	"URANIUM": {
		{"Nuclear Utilities", "Reactor operators procuring natural uranium", "UTILITY", "HIGH"},
		{"Fuel Cycle Intermediaries", "Converters and enrichers holding inventory", "INDUSTRIAL", "MEDIUM"},
	},
	generic: {
		{"Industrial Customers", "Processors consuming primary product", "INDUSTRIAL", "HIGH"},
		{"Commodity Traders", "Merchants purchasing spot cargoes", "TRADER", "MEDIUM"},
	},
}

var revenueStreams = map[string][]Item{
	"COAL": {
		{"Metallurgical Coal Sales", "Benchmark-linked sales of hard coking coal", "PRODUCT_SALES", "HIGH"},
		{"Thermal Coal Sales", "Index-priced energy coal contracts", "PRODUCT_SALES", "HIGH"},
	},
	"COPPER": {
		{"Concentrate Sales", "Payable copper less treatment and refining charges", "PRODUCT_SALES", "HIGH"},
		{"Cathode Sales", "LME-referenced cathode premiums", "PRODUCT_SALES", "HIGH"},
		{"By-product Credits", "Gold, silver and molybdenum credits", "BY_PRODUCT", "MEDIUM"},
	},
	"GOLD": {
		{"Gold Sales", "Spot and hedged gold ounces", "PRODUCT_SALES", "HIGH"},
		{"Silver Credits", "Payable silver recovered in dore", "BY_PRODUCT", "LOW"},
	},
	"IRON_ORE": {
		{"Fines Sales", "Index-linked fines with grade adjustments", "PRODUCT_SALES", "HIGH"},
		{"Lump Premium", "Premium earned on lump product", "PRODUCT_SALES", "MEDIUM"},
	},
	"LITHIUM": {
		{"Spodumene Concentrate Sales", "Offtake sales priced on SC6 index", "PRODUCT_SALES", "HIGH"},
		{"Hydroxide Sales", "Contracted battery chemical sales", "PRODUCT_SALES", "HIGH"},
	},
	"URANIUM": {
		{"Term Contract Sales", "Base-escalated long term contract deliveries", "PRODUCT_SALES", "HIGH"},
		{"Spot Sales", "Opportunistic spot market deliveries", "PRODUCT_SALES", "LOW"},
	},
	generic: {
		{"Product Sales", "Revenue from primary product sales", "PRODUCT_SALES", "HIGH"},
		{"Services Income", "Fees from tolling and site services", "SERVICES", "LOW"},
	},
}

var channels = map[string][]Item{
	generic: {
		{"Long Term Offtake Agreements", "Multi-year contracts with anchor customers", "DIRECT", "HIGH"},
		{"Spot Market Sales", "Tendered cargoes to the open market", "MARKET", "MEDIUM"},
		{"Marketing Office", "Regional sales and customer technical support", "DIRECT", "MEDIUM"},
	},
}

var keyResources = map[string][]Item{
	generic: {
		{"Mineral Resources and Reserves", "JORC reported resource base and mine life", "PHYSICAL", "CRITICAL"},
		{"Processing Plant", "Crushing, concentration and product handling assets", "PHYSICAL", "HIGH"},
		{"Skilled Workforce", "Operators, maintainers and technical specialists", "HUMAN", "HIGH"},
		{"Operating Licences", "Mining leases, environmental approvals and water rights", "INTELLECTUAL", "CRITICAL"},
	},
}

var keyActivities = map[string][]Item{
	generic: {
		{"Mine Planning", "Life of mine and short interval scheduling", "PLANNING", "HIGH"},
		{"Extraction", "Drill, blast, load and haul", "PRODUCTION", "CRITICAL"},
		{"Processing", "Ore treatment to saleable product", "PRODUCTION", "CRITICAL"},
		{"Critical Control Management", "Verification of controls for material unwanted events", "SAFETY", "CRITICAL"},
	},
}

var keyPartnerships = map[string][]Item{
	generic: {
		{"Mining Contractors", "Contract mining and drilling services", "SUPPLIER", "HIGH"},
		{"Equipment Manufacturers", "Fleet supply and maintenance agreements", "SUPPLIER", "MEDIUM"},
		{"Traditional Owners", "Land access and cultural heritage agreements", "COMMUNITY", "HIGH"},
		{"Logistics Providers", "Rail, road and port service providers", "SUPPLIER", "MEDIUM"},
	},
}

var costStructures = map[string][]Item{
	generic: {
		{"Labour", "Employee and contractor costs", "OPERATING", "HIGH"},
		{"Energy", "Diesel, electricity and gas", "OPERATING", "HIGH"},
		{"Maintenance and Consumables", "Parts, reagents, explosives and tyres", "OPERATING", "MEDIUM"},
		{"Sustaining Capital", "Fleet replacement and tailings lifts", "CAPITAL", "MEDIUM"},
		{"Royalties", "State royalties on product value", "GOVERNMENT", "MEDIUM"},
	},
}
