package entity

// Fixtures returns a fresh copy of the demo data set the stores are seeded with.
func Fixtures() []*Appointment {
	return []*Appointment{
		{ID: 1, Name: "Sarah Johnson", Date: "2026-01-30", Time: "09:00", Duration: 30, DoctorName: "Dr. Rajesh Kumar", Status: StatusConfirmed, Mode: ModeInPerson, Reason: "Diabetes Management", Phone: "+91 98765 43210", Email: "sarah.j@email.com", Notes: "Patient needs prescription refill"},
		{ID: 2, Name: "Michael Chen", Date: "2026-01-30", Time: "10:00", Duration: 45, DoctorName: "Dr. Priya Sharma", Status: StatusScheduled, Mode: ModeInPerson, Reason: "Annual Physical Examination", Phone: "+91 98765 43211", Email: "m.chen@email.com"},
		{ID: 3, Name: "Emily Rodriguez", Date: "2026-01-30", Time: "11:30", Duration: 30, DoctorName: "Dr. Rajesh Kumar", Status: StatusConfirmed, Mode: ModeVideoCall, Reason: "Cold and Flu Symptoms", Phone: "+91 98765 43212", Email: "emily.r@email.com", Notes: "Video consultation requested"},
		{ID: 4, Name: "Rahul Sharma", Date: "2026-01-31", Time: "09:00", Duration: 30, DoctorName: "Dr. Priya Sharma", Status: StatusUpcoming, Mode: ModeInPerson, Reason: "General Checkup", Phone: "+91 98765 43213", Email: "rahul.s@email.com"},
		{ID: 5, Name: "Anita Desai", Date: "2026-01-31", Time: "14:00", Duration: 45, DoctorName: "Dr. Amit Patel", Status: StatusUpcoming, Mode: ModeVideoCall, Reason: "Follow-up Consultation", Phone: "+91 98765 43214", Email: "anita.d@email.com"},
		{ID: 6, Name: "Vikram Singh", Date: "2026-01-29", Time: "10:00", Duration: 30, DoctorName: "Dr. Rajesh Kumar", Status: StatusConfirmed, Mode: ModeInPerson, Reason: "Blood Pressure Check", Phone: "+91 98765 43215", Email: "vikram.s@email.com", Notes: "Regular checkup"},
		{ID: 7, Name: "Priya Nair", Date: "2026-01-29", Time: "15:30", Duration: 45, DoctorName: "Dr. Amit Patel", Status: StatusCancelled, Mode: ModeInPerson, Reason: "Skin Consultation", Phone: "+91 98765 43216", Email: "priya.n@email.com", Notes: "Patient cancelled"},
		{ID: 8, Name: "Deepak Malhotra", Date: "2026-02-01", Time: "09:30", Duration: 30, DoctorName: "Dr. Priya Sharma", Status: StatusScheduled, Mode: ModeInPerson, Reason: "Vaccination", Phone: "+91 98765 43217", Email: "deepak.m@email.com"},
		{ID: 9, Name: "Sunita Verma", Date: "2026-02-01", Time: "11:00", Duration: 60, DoctorName: "Dr. Rajesh Kumar", Status: StatusUpcoming, Mode: ModeInPerson, Reason: "Complete Health Checkup", Phone: "+91 98765 43218", Email: "sunita.v@email.com"},
		{ID: 10, Name: "Kiran Joshi", Date: "2026-01-30", Time: "16:00", Duration: 30, DoctorName: "Dr. Amit Patel", Status: StatusConfirmed, Mode: ModePhoneCall, Reason: "Test Results Discussion", Phone: "+91 98765 43219", Email: "kiran.j@email.com"},
		{ID: 11, Name: "Neha Kapoor", Date: "2026-01-28", Time: "10:30", Duration: 30, DoctorName: "Dr. Amit Patel", Status: StatusConfirmed, Mode: ModePhoneCall, Reason: "Medication Review", Phone: "+91 98765 43220", Email: "neha.k@email.com", Notes: "Past appointment - completed"},
		{ID: 12, Name: "Amit Tiwari", Date: "2026-02-02", Time: "14:30", Duration: 45, DoctorName: "Dr. Priya Sharma", Status: StatusScheduled, Mode: ModeVideoCall, Reason: "Mental Health Consultation", Phone: "+91 98765 43221", Email: "amit.t@email.com", Notes: "First time patient"},
	}
}
