package i18n

var messages = map[string]map[string]string{
	"en": {
		KeyTitle:            "Admin Dashboard",
		KeyAllTime:          "All Time",
		KeyLast30Days:       "Last 30 Days",
		KeyLast7Days:        "Last 7 Days",
		KeyToday:            "Today",
		KeyTotalSales:       "Total Revenue",
		KeyPureProfit:       "Net Profit",
		KeyTransactionCount: "Orders",
		KeyItemsSold:        "Products Sold",
		KeyTopProducts:      "Best Selling Items",
		KeySalesByCategory:  "Revenue by Category",
		KeySalesByUser:      "Performance by Seller",
		KeyDailyHighlights:  "Sales Velocity",
		KeyNoData:           "No data available",
		KeyBestDay:          "Peak Day",
		KeyUnknownUser:      "Unknown Seller",
		KeyUncategorized:    "Uncategorized",
		KeyInventoryHealth:  "Inventory Health",
		KeyLowStock:         "Low Stock Alert",
		KeyOutOfStock:       "Out of Stock",
		KeyRecentActivity:   "Recent Activity",
		KeyStock:            "In Stock",
		KeyClientDebts:      "Client Debts",
		KeySupplierDebts:    "Supplier Debts",
		KeyPartialData:      "Partial data, unavailable sources:",
	},
	"ar": {
		KeyTitle:            "لوحة تحكم المسؤول",
		KeyAllTime:          "كل الوقت",
		KeyLast30Days:       "آخر 30 يومًا",
		KeyLast7Days:        "آخر 7 أيام",
		KeyToday:            "اليوم",
		KeyTotalSales:       "إجمالي الإيرادات",
		KeyPureProfit:       "صافي الربح",
		KeyTransactionCount: "الطلبات",
		KeyItemsSold:        "المنتجات المباعة",
		KeyTopProducts:      "الأصناف الأكثر مبيعاً",
		KeySalesByCategory:  "الإيرادات حسب الفئة",
		KeySalesByUser:      "أداء البائعين",
		KeyDailyHighlights:  "سرعة المبيعات",
		KeyNoData:           "لا توجد بيانات متاحة",
		KeyBestDay:          "يوم الذروة",
		KeyUnknownUser:      "بائع غير معروف",
		KeyUncategorized:    "غير مصنف",
		KeyInventoryHealth:  "سلامة المخزون",
		KeyLowStock:         "تنبيه انخفاض المخزون",
		KeyOutOfStock:       "نفذ من المخزن",
		KeyRecentActivity:   "النشاط الأخير",
		KeyStock:            "في المخزن",
		KeyClientDebts:      "ديون العملاء",
		KeySupplierDebts:    "ديون الموردين",
		KeyPartialData:      "بيانات جزئية، مصادر غير متاحة:",
	},
	"fr": {
		KeyTitle:            "Tableau de Bord",
		KeyAllTime:          "Tout le temps",
		KeyLast30Days:       "30 derniers jours",
		KeyLast7Days:        "7 derniers jours",
		KeyToday:            "Aujourd'hui",
		KeyTotalSales:       "Chiffre d'Affaires",
		KeyPureProfit:       "Bénéfice Net",
		KeyTransactionCount: "Commandes",
		KeyItemsSold:        "Produits Vendus",
		KeyTopProducts:      "Meilleures Ventes",
		KeySalesByCategory:  "Revenus par Catégorie",
		KeySalesByUser:      "Performance Vendeur",
		KeyDailyHighlights:  "Vitesse des Ventes",
		KeyNoData:           "Aucune donnée disponible",
		KeyBestDay:          "Jour de Pointe",
		KeyUnknownUser:      "Vendeur inconnu",
		KeyUncategorized:    "Non classé",
		KeyInventoryHealth:  "Santé des Stocks",
		KeyLowStock:         "Alerte Stock Bas",
		KeyOutOfStock:       "Rupture de Stock",
		KeyRecentActivity:   "Activité Récente",
		KeyStock:            "En Stock",
		KeyClientDebts:      "Dettes Clients",
		KeySupplierDebts:    "Dettes Fournisseurs",
		KeyPartialData:      "Données partielles, sources indisponibles :",
	},
}

var weekdays = map[string][7]string{
	"en": {"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	"ar": {"الأحد", "الاثنين", "الثلاثاء", "الأربعاء", "الخميس", "الجمعة", "السبت"},
	"fr": {"Dimanche", "Lundi", "Mardi", "Mercredi", "Jeudi", "Vendredi", "Samedi"},
}
