package services

// Services defined in this package:
// - AuthService: admin login and token issuance
// - UpdateService: announcement updates CRUD
// - CutoffService: cutoff listing and bulk imports
// - PredictorService: college prediction buckets
// - GuideService: guide listing and download lead capture
// - BookingService: booking orchestration and status management
