// Package wordnik is a client for the Wordnik v4 word API.
//
// The Client builds the query for each endpoint, sends it through a
// Transport and decodes the answer into model types. It knows nothing about
// the command line; the lookup package decides which endpoints to call and
// in what order.
//
// # Endpoints
//
//	definitions     records for the word, one per sense
//	pronunciations  text transcriptions
//	audio           spoken clips; the first clip is downloaded
//	examples        usage examples
//	hyphenation     syllables
//	relatedWords    synonyms and antonyms
//	frequency       usage counts per year
//	etymologies     origin notes
//
// # Errors
//
// Every failure is a *FetchError. Its Kind says whether the request failed
// (KindTransport), the payload had the wrong shape (KindDecode) or nothing
// usable came back (KindEmpty). A 404 counts as KindEmpty.
package wordnik
