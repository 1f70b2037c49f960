package models

// IPInfo is what the server knows about an IP address.
type IPInfo struct {
	IP           string   `json:"ip"`
	IPType       string   `json:"ip_type"`
	Country      *string  `json:"country,omitempty"`
	CountryCode  *string  `json:"country_code,omitempty"`
	Region       *string  `json:"region,omitempty"`
	City         *string  `json:"city,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	Timezone     *string  `json:"timezone,omitempty"`
	ISP          *string  `json:"isp,omitempty"`
	Organization *string  `json:"organization,omitempty"`
	ASN          *string  `json:"asn,omitempty"`

	IsBogon      bool `json:"is_bogon"`
	IsMobile     bool `json:"is_mobile"`
	IsSatellite  bool `json:"is_satellite"`
	IsCrawler    bool `json:"is_crawler"`
	IsDatacenter bool `json:"is_datacenter"`
	IsTor        bool `json:"is_tor"`
	IsProxy      bool `json:"is_proxy"`
	IsVPN        bool `json:"is_vpn"`
	IsAbuser     bool `json:"is_abuser"`

	Banned    bool    `json:"banned"`
	BanReason *string `json:"ban_reason,omitempty"`

	ThreatLevel     ThreatLevel `json:"threat_level"`
	RiskScore       int         `json:"risk_score"`
	RiskLevel       string      `json:"risk_level"`
	RiskDescription string      `json:"risk_description"`

	QueryStatus QueryStatus `json:"query_status"`
	LastQueryAt *Time       `json:"last_query_at,omitempty"`
	CreatedAt   Time        `json:"created_at"`
	UpdatedAt   Time        `json:"updated_at"`
}

// IPsListData is a page of IP records.
type IPsListData struct {
	IPs []IPInfo `json:"ips"`
	PageInfo
}

func (d *IPsListData) Items() []IPInfo { return d.IPs }

func (d *IPsListData) SetItems(items []IPInfo) { d.IPs = items }

// IPStatistics are aggregate counts over all known IP addresses.
type IPStatistics struct {
	TotalIPs      int `json:"total_ips"`
	CompletedIPs  int `json:"completed_ips"`
	PendingIPs    int `json:"pending_ips"`
	FailedIPs     int `json:"failed_ips"`
	BannedIPs     int `json:"banned_ips"`
	ProxyIPs      int `json:"proxy_ips"`
	VPNIPs        int `json:"vpn_ips"`
	TorIPs        int `json:"tor_ips"`
	DatacenterIPs int `json:"datacenter_ips"`
	HighRiskIPs   int `json:"high_risk_ips"`
}
