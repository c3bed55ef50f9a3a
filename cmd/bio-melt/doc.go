/*
bio-melt validates the inputs for a MELT mobile-element-insertion run and
launches the detector (MELT.jar, Single mode) against one BAM file.

MELT itself does all of the detection work. bio-melt exists so that a
pipeline fails early, with a message naming the missing index or mistyped
directory, instead of minutes into a Java run. It checks each input in turn,
creates the run directory, writes the transposon reference manifest for the
requested genome build, mirrors a timestamped log to the console and to
ayan_melt_wrapper.log inside the run directory, and then blocks until MELT
exits, propagating its exit status.

Sample usage:
bio-melt \
    /data/samples/NA12878.bam \
    /data/ref/hg38.fa \
    30 150 350 \
    /opt/MELTv2 \
    /data/runs/NA12878-melt \
    38

All eight arguments are positional and required. Coverage, read length and
mean insert size accept decimal values; the fractional part is discarded.
The genome build must be 19 (1KGP hg19 resources) or 38 (hg38 resources).

Two environment variables tune the launch: JVM_MAX_MEM (default 12G) sets
the Java heap, and MIN_CHR_LENGTH (default 40000000) sets MELT's minimum
contig length filter.

Concurrent invocations sharing one run directory are unsupported: they race
on the manifest and the log file.
*/
package main
