package services

// Services defined in this package:
// - StudentService: enrollment records, search, photo handling
// - CourseService: course catalog
// - FeeLedgerService: fee collection ledger and the paid-fee invariant
// - CertificateService: certificate issuance and public verification
// - DashboardService: summary counts and the pending-fee aggregate
//
// Each service depends on a narrow store interface declared alongside it
// and satisfied by the corresponding repository; tests substitute
// in-memory fakes.
