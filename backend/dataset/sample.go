package dataset

var sampleRows = []Row{
	{"Charminar", 17.3616, 78.4747, "Needs Repair"},
	{"Hitech City", 17.4435, 78.3772, "Under Repair"},
	{"Kukatpally", 17.4948, 78.3996, "Needs Repair"},
	{"Secunderabad", 17.4399, 78.4983, "Fixed"},
	{"Banjara Hills", 17.4126, 78.4482, "Fixed"},
	{"Gachibowli", 17.4401, 78.3489, "Under Repair"},
	{"Madhapur", 17.4483, 78.3915, "Needs Repair"},
	{"Ameerpet", 17.4375, 78.4483, "Fixed"},
	{"LB Nagar", 17.3457, 78.5510, "Needs Repair"},
	{"Begumpet", 17.4448, 78.4623, "Under Repair"},
	{"Kukatpally", 17.4948, 78.3996, "Needs Repair"},
	{"Kukatpally", 17.4948, 78.3996, "Under Repair"},
	{"Ameerpet", 17.4375, 78.4483, "Needs Repair"},
	{"LB Nagar", 17.3457, 78.5510, "Fixed"},
	{"Hitech City", 17.4435, 78.3772, "Needs Repair"},
}

// Sample is the built-in Hyderabad dataset.
func Sample() *Dataset {
	rows := make([]Row, len(sampleRows))
	copy(rows, sampleRows)
	return New(rows)
}
