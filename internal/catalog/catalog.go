// Package catalog содержит фиксированные данные мониторинга для главной страницы,
// карты и соцсетей. Каждая функция возвращает новую копию данных.
package catalog

// StatCard - карточка с показателем
type StatCard struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Note   string `json:"note"`
	Accent string `json:"accent"`
}

// RecentReport - запись в списке последних сообщений на главной странице
type RecentReport struct {
	ID       int    `json:"id"`
	Type     string `json:"type"`
	Location string `json:"location"`
	Time     string `json:"time"`
	Severity string `json:"severity"`
	Status   string `json:"status"`
}

// HealthMetric - состояние подсистемы мониторинга в процентах
type HealthMetric struct {
	Name    string  `json:"name"`
	Percent float64 `json:"percent"`
	Accent  string  `json:"accent"`
}

// HazardMarker - маркер опасности на карте
type HazardMarker struct {
	ID          int        `json:"id"`
	Type        string     `json:"type"`
	Location    string     `json:"location"`
	Coordinates [2]float64 `json:"coordinates"` // [lon, lat]
	Severity    string     `json:"severity"`
	Reports     int        `json:"reports"`
	LastUpdated string     `json:"last_updated"`
	Status      string     `json:"status"`
}

// SocialPost - публикация из социальных сетей
type SocialPost struct {
	ID         int    `json:"id"`
	Platform   string `json:"platform"`
	Content    string `json:"content"`
	Author     string `json:"author"`
	Location   string `json:"location"`
	Timestamp  string `json:"timestamp"`
	Engagement int    `json:"engagement"`
	Sentiment  string `json:"sentiment"`
	Verified   bool   `json:"verified"`
}

type TrendingKeyword struct {
	Keyword  string `json:"keyword"`
	Mentions int    `json:"mentions"`
	Change   string `json:"change"`
}

type RegionShare struct {
	Region     string `json:"region"`
	Percentage int    `json:"percentage"`
	Mentions   int    `json:"mentions"`
}

type SentimentShare struct {
	Label   string `json:"label"`
	Percent int    `json:"percent"`
	Accent  string `json:"accent"`
}

func DashboardStats() []StatCard {
	return []StatCard{
		{Title: "Active Reports", Value: "23", Note: "+12% from last hour", Accent: "destructive"},
		{Title: "Monitoring Stations", Value: "156", Note: "98.7% operational", Accent: "primary"},
		{Title: "Active Users", Value: "1,247", Note: "Citizens online now", Accent: "success"},
		{Title: "Social Mentions", Value: "847", Note: "Last 24 hours", Accent: "warning"},
	}
}

func RecentReports() []RecentReport {
	return []RecentReport{
		{ID: 1, Type: "Tsunami Warning", Location: "Chennai Coast", Time: "2 minutes ago", Severity: "high", Status: "active"},
		{ID: 2, Type: "High Waves", Location: "Mumbai Harbor", Time: "15 minutes ago", Severity: "medium", Status: "monitoring"},
		{ID: 3, Type: "Storm Surge", Location: "Kolkata Port", Time: "1 hour ago", Severity: "low", Status: "resolved"},
	}
}

func SystemHealth() []HealthMetric {
	return []HealthMetric{
		{Name: "Sensor Network", Percent: 98.7, Accent: "success"},
		{Name: "Data Processing", Percent: 99.1, Accent: "success"},
		{Name: "Social Media Feed", Percent: 89.3, Accent: "warning"},
		{Name: "Mobile App Sync", Percent: 95.8, Accent: "success"},
	}
}

// MaintenanceNotice - сообщение под блоком состояния систем
const MaintenanceNotice = "No critical issues detected. Minor maintenance scheduled for 2:00 AM IST."

func HazardMarkers() []HazardMarker {
	return []HazardMarker{
		{ID: 1, Type: "Tsunami Warning", Location: "Chennai Coast", Coordinates: [2]float64{80.2707, 13.0827}, Severity: "critical", Reports: 23, LastUpdated: "2 min ago", Status: "active"},
		{ID: 2, Type: "High Waves", Location: "Mumbai Harbor", Coordinates: [2]float64{72.8777, 19.0760}, Severity: "high", Reports: 8, LastUpdated: "15 min ago", Status: "monitoring"},
		{ID: 3, Type: "Storm Surge", Location: "Kochi Port", Coordinates: [2]float64{76.2673, 9.9312}, Severity: "medium", Reports: 5, LastUpdated: "1 hour ago", Status: "monitoring"},
	}
}

func SocialPosts() []SocialPost {
	return []SocialPost{
		{
			ID:         1,
			Platform:   "Twitter",
			Content:    "Massive waves hitting Chennai marina! Water level rising rapidly. #TsunamiAlert #ChennaiFlood",
			Author:     "@chennai_local",
			Location:   "Chennai, Tamil Nadu",
			Timestamp:  "2 min ago",
			Engagement: 234,
			Sentiment:  "urgent",
			Verified:   false,
		},
		{
			ID:         2,
			Platform:   "Facebook",
			Content:    "Unusual high tide at Bandra Bandstand. People evacuating the area. Authorities on scene.",
			Author:     "Mumbai Updates",
			Location:   "Mumbai, Maharashtra",
			Timestamp:  "8 min ago",
			Engagement: 89,
			Sentiment:  "concerning",
			Verified:   true,
		},
		{
			ID:         3,
			Platform:   "Instagram",
			Content:    "Storm surge warnings for Kochi port. Fishing boats returning to harbor. Stay safe everyone! 🌊",
			Author:     "@kochi_fisher",
			Location:   "Kochi, Kerala",
			Timestamp:  "15 min ago",
			Engagement: 156,
			Sentiment:  "informative",
			Verified:   false,
		},
	}
}

func SocialStats() []StatCard {
	return []StatCard{
		{Title: "Total Mentions", Value: "3,847", Note: "+22% from last hour", Accent: "primary"},
		{Title: "Urgent Reports", Value: "47", Note: "Requires immediate review", Accent: "destructive"},
		{Title: "Verified Sources", Value: "156", Note: "Active verified accounts", Accent: "success"},
		{Title: "Sentiment Score", Value: "73%", Note: "Concern level rising", Accent: "warning"},
	}
}

func TrendingKeywords() []TrendingKeyword {
	return []TrendingKeyword{
		{Keyword: "tsunami", Mentions: 1247, Change: "+89%"},
		{Keyword: "high waves", Mentions: 856, Change: "+45%"},
		{Keyword: "storm surge", Mentions: 634, Change: "+23%"},
		{Keyword: "coastal flooding", Mentions: 421, Change: "+67%"},
		{Keyword: "evacuation", Mentions: 289, Change: "+156%"},
	}
}

func RegionalDistribution() []RegionShare {
	return []RegionShare{
		{Region: "Tamil Nadu", Percentage: 34, Mentions: 1308},
		{Region: "Maharashtra", Percentage: 28, Mentions: 1077},
		{Region: "Kerala", Percentage: 18, Mentions: 693},
		{Region: "Gujarat", Percentage: 12, Mentions: 462},
		{Region: "West Bengal", Percentage: 8, Mentions: 307},
	}
}

func SentimentBreakdown() []SentimentShare {
	return []SentimentShare{
		{Label: "Urgent/Emergency", Percent: 23, Accent: "destructive"},
		{Label: "Concerning", Percent: 45, Accent: "warning"},
		{Label: "Informational", Percent: 32, Accent: "success"},
	}
}

// CredibilityScore - итоговая оценка достоверности по шкале из 10 баллов
const CredibilityScore = 8.7
