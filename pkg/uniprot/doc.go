// Package uniprot implements a client for the UniProtKB search REST API.
//
// It builds percent-encoded search URLs for taxonomic queries, performs GET
// requests with retry on transient failures, and follows the RFC5988 Link
// response header to paginate through results. Pages are consumed through
// the pull-based Batcher iterator:
//
//	client := uniprot.NewClient(&cfg.UniProt, cfg.Retry, log)
//	startURL := uniprot.BuildSearchURL(cfg.UniProt.BaseURL, 816, "true", cfg.UniProt.Fields, 500)
//	batcher := uniprot.NewBatcher(client, limiter, startURL, log)
//	for {
//		page, err := batcher.Next(ctx)
//		if err != nil || page == nil {
//			break
//		}
//		// consume page.Lines()
//	}
package uniprot
